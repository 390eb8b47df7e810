package utils

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashAPIKey generates a bcrypt hash from a plain text staff key
func HashAPIKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), bcryptCost)
	return string(bytes), err
}

// CompareAPIKey compares a bcrypt hashed key with a plain text key
func CompareAPIKey(hashedKey, key string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
	return err == nil
}
