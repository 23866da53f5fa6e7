package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a farmer or an admin account.
type User struct {
	ID           uint      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username     string    `json:"username" gorm:"column:username;unique;not null"`
	PhoneNo      string    `json:"phone_no" gorm:"column:phone_no;unique;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	FullName     string    `json:"full_name" gorm:"column:full_name;not null"`
	Village      string    `json:"village" gorm:"column:village"`
	IsAdmin      bool      `json:"is_admin" gorm:"column:is_admin;default:false"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// SetPassword stores a bcrypt hash of the plaintext password.
// The plaintext itself is never persisted.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
