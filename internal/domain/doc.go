// Package domain contains the reading-practice entities and the value objects
// they are built from. Every constructor validates its input, so a value
// obtained from this package is always in a valid state. Entities are
// immutable: update methods return a new value and leave the receiver as is.
//
// Nothing here knows about storage, HTTP, or authentication providers.
package domain
