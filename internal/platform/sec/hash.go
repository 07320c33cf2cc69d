// Copyright (c) 2026 Keepsake. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt digest of an unguessable constant. It exists so
// that login attempts against unknown usernames still pay the cost of one
// bcrypt comparison, keeping "user not found" and "wrong password" at the
// same response latency.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("keepsake-dummy-credential"), bcrypt.DefaultCost)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// The digest embeds a random salt, so hashing the same password twice yields
// two different digests that both verify.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
//
// A malformed digest is reported as a mismatch, not an error: from the
// caller's perspective the credentials simply don't verify.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// BurnPasswordCheck performs a bcrypt comparison that is guaranteed to fail.
//
// Called on the "username not found" path of authentication so its timing
// matches a real password check.
func BurnPasswordCheck(plainTextPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plainTextPassword))
}
