// Package service defines interfaces for domain services implemented by the infrastructure layer.
package service

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check returns true only if password matches hash.
	Check(password, hash string) bool
}
