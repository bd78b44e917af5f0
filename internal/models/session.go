package models

import "github.com/golang-jwt/jwt"

// RoleAdmin is the role claim the moderation routes require.
const RoleAdmin = "ROLE_ADMIN"

type Claims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}
