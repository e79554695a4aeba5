// Package testutils provides shared helpers for integration tests that need
// a real PostgreSQL database.
//
// Tests acquire a migrated database handle with GetTestDB, which skips the
// calling test when DATABASE_URL is not set and fails it when that happens
// under a CI provider. Isolation between tests comes
// from WithTx, which runs each test body inside a transaction that is always
// rolled back, so no test ever observes another test's rows.
package testutils
