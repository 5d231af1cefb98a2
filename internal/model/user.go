// File: internal/model/user.go
package model

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsCustomer   bool      `db:"is_customer" json:"is_customer"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserChanges 部分更新欄位，nil 表示保留原值
type UserChanges struct {
	Name         *string
	Email        *string
	PasswordHash *string
	IsCustomer   *bool
}

// Empty 回傳是否沒有任何欄位需要更新
func (c UserChanges) Empty() bool {
	return c.Name == nil && c.Email == nil && c.PasswordHash == nil && c.IsCustomer == nil
}
