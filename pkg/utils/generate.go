package utils

import (
	"crypto/rand"
	"fmt"
)

const shortIDChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShortIDLength is the length of the generated user/product ids.
const ShortIDLength = 6

// GenerateOTP creates a numeric OTP of the given length. Leading zeros are
// allowed, so the code is a string, never an integer.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 4
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken
		panic(fmt.Sprintf("generate OTP: %v", err))
	}

	otp := make([]byte, length)
	for i := range buf {
		otp[i] = '0' + buf[i]%10
	}

	return string(otp)
}

// GenerateShortID creates a random 6-character alphanumeric id. Uniqueness
// against the store is the caller's job.
func GenerateShortID() string {
	buf := make([]byte, ShortIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("generate short id: %v", err))
	}

	id := make([]byte, ShortIDLength)
	for i := range buf {
		id[i] = shortIDChars[int(buf[i])%len(shortIDChars)]
	}

	return string(id)
}
