package domain

import "github.com/golang-jwt/jwt/v5"

// User is a dashboard account loaded from configuration.
type User struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// Claims is the JWT payload issued on login.
type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}
