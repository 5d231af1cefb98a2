// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong 密碼超過 bcrypt 可處理的 72 bytes
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

var bcryptGenerateFromPassword = bcrypt.GenerateFromPassword

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}
