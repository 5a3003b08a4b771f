// internal/app/system/passwords/passwords.go
package passwords

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost for hashing account passwords.
const BcryptCost = 10

// Hash hashes a plaintext password with bcrypt. The salt is random, so
// hashing the same password twice yields different hashes; Verify still
// matches both.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored bcrypt hash.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
