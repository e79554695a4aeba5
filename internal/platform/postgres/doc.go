// Package postgres provides PostgreSQL implementations of the persistence
// interfaces defined in internal/store. It owns the SQL, the mapping between
// rows and domain entities, and the translation of database errors into
// store sentinel errors.
package postgres
