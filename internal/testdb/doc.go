//go:build integration

// Package testdb provisions PostgreSQL for integration tests. It either
// uses the database named by READALOUD_TEST_DATABASE_URL or starts a
// throwaway container with testcontainers, and offers WithTx for tests that
// should leave no rows behind.
package testdb
