// Package domain contains the core business entities, value objects, and
// invariants of the application. It has no knowledge of HTTP, SQL, or any
// other delivery or storage mechanism.
package domain
