// Package password turns plaintext passwords into stored credentials and
// back-checks them. The credential is a bcrypt hash, salted per call, so the
// same plaintext never produces the same credential twice.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a storable credential from a plaintext password.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored credential. A mismatch
// is a normal false, not an error.
func Verify(plaintext, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}
