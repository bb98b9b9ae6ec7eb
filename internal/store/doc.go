// Package store defines the persistence contracts for reading texts, reading
// records, audio files, evaluations, user profiles, and auth credentials.
// Implementations live under internal/platform; services depend only on the
// interfaces declared here.
package store
