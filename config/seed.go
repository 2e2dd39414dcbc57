package config

import (
	"log"
	"os"

	"go-postgres-optics/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates the default admin and operator accounts when missing.
// Passwords can be overridden via ADMIN_PASSWORD / USER_PASSWORD.
func SeedUsers() {
	accounts := []struct {
		Username string
		Password string
		Role     string
		EnvKey   string
	}{
		{"admin", "admin123", models.RoleAdmin, "ADMIN_PASSWORD"},
		{"operator", "operator123", models.RoleUser, "USER_PASSWORD"},
	}

	for _, a := range accounts {
		var cnt int64
		DB.Model(&models.User{}).Where("username = ?", a.Username).Count(&cnt)
		if cnt > 0 {
			continue
		}

		password := a.Password
		if v := os.Getenv(a.EnvKey); v != "" {
			password = v
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("⚠️  Failed to hash password for %s: %v", a.Username, err)
			continue
		}

		DB.Create(&models.User{Username: a.Username, PasswordHash: string(hash), Type: a.Role})
	}
}
