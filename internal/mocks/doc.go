// Package mocks provides shared mock implementations for testing.
//
// Each mock implements one of the application's interfaces with an in-memory
// default and an optional Fn hook per method. Tests that only need plausible
// behavior use the defaults; tests that need a specific response or failure
// set the hook. Keeping the mocks here, rather than inline in each test file,
// means a change to an interface is absorbed in one place.
//
// Usage:
//
//	import "github.com/taskflowhq/taskflow-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    jwtService := &mocks.MockJWTService{
//	        GenerateTokenFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
//	            return "stub-token", nil
//	        },
//	    }
//	    // hand jwtService to the code under test
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Declare the Fn hook fields first, then any state the defaults need
//  3. Give every method a reasonable in-memory default
package mocks
