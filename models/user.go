package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	Username     string    `gorm:"primaryKey;size:120" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Type         string    `gorm:"size:20;not null;default:user" json:"type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
