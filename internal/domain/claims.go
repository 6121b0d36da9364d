package domain

import "github.com/golang-jwt/jwt/v5"

// Claims carregadas no token emitido pelo serviço de autenticação
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
