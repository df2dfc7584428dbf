package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	// ไม่มีตัวที่สับสน เช่น 0, O, l, 1
	alphanumeric = "abcdefghjkmnpqrstuvwxyz23456789"
	digits       = "0123456789"
)

// GenerateRandomString สร้าง random string ความยาว n ตัวอักษร
func GenerateRandomString(n int) string {
	return randomFrom(alphanumeric, n)
}

// GenerateNumericCode returns n random decimal digits, leading zeros allowed
func GenerateNumericCode(n int) (string, error) {
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		result[i] = digits[num.Int64()]
	}
	return string(result), nil
}

func randomFrom(charset string, n int) string {
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			// fallback ถ้า crypto/rand ใช้ไม่ได้
			result[i] = charset[i%len(charset)]
			continue
		}
		result[i] = charset[num.Int64()]
	}
	return string(result)
}
