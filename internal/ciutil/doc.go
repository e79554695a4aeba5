// Package ciutil detects whether the process is running under a CI provider.
//
// Integration tests use this to decide between skipping (local runs without
// a database) and failing (CI runs, where a missing database would silently
// drop coverage).
package ciutil
