package api

import (
	"github.com/limbo/habbit/pkg/entity"
	jwtservice "github.com/limbo/habbit/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	// Parses and verifies token, also checking expiration
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}
