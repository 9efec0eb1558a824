package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for account password hashes. Raising it
// only affects newly hashed passwords; stored hashes keep their cost.
const BcryptCost = 12

// HashPassword hashes a plaintext password for storage on a user row.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored hash. A
// malformed hash counts as a mismatch.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
