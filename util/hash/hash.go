package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a salted bcrypt digest. Two calls with the
// same plaintext yield different digests; Check accepts both.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(h), err
}

func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
