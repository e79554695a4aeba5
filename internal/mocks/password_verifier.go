package mocks

import "errors"

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// CompareFn allows test cases to mock the Compare behavior
	CompareFn func(hashedPassword, password string) error

	// ShouldSucceed selects the default outcome when CompareFn is unset.
	// The zero value reports a mismatch.
	ShouldSucceed bool

	// CompareCallCount and CompareCalledWith record how Compare was
	// invoked, for assertions on handler wiring.
	CompareCallCount  int
	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
