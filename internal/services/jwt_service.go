package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/propertyhub/listings-api/internal/models"
)

const (
	TokenIssuer = "listings-api"

	tokenLifetime = 7 * 24 * time.Hour
)

// TokenClaims is what the middleware extracts from a validated token.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

type JWTService interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*TokenClaims, error)
}

type jwtService struct {
	secret []byte
}

func NewJWTService(secret string) JWTService {
	return &jwtService{secret: []byte(secret)}
}

func (j *jwtService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":      TokenIssuer,
		"sub":      user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(j.secret)
}

func (j *jwtService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	out := &TokenClaims{UserID: userID}
	if v, ok := mapClaims["username"].(string); ok {
		out.Username = v
	}
	if v, ok := mapClaims["role"].(string); ok {
		out.Role = v
	}
	return out, nil
}
