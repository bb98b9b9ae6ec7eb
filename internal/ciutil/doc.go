// Package ciutil detects CI environments and reads the environment
// variables shared by test tooling, such as the test database URL.
package ciutil
