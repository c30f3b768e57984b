package utils

import (
	"fmt"
	"math/rand"
	"strconv"
)

// GenerateOTP creates a numeric one-time code of exactly the given length.
// Leading zeros are kept, so a 4-digit code is always 4 characters.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 4
	}

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rand.Intn(10))
	}

	return otp
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
