package service

import (
	"time"

	"maintenance-system/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims es el token de sesión simulada. El panel no tiene backend de
// autenticación: el login solo retarda y emite una sesión firmada sin
// verificar credenciales.
type SessionClaims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateSessionToken(usuario string) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	GetSessionTTL() time.Duration
}

type jwtService struct {
	SecretKey  string
	SessionExp time.Duration
}

func NewJWTService(secretKey string, sessionExp time.Duration) JWTService {
	return &jwtService{
		SecretKey:  secretKey,
		SessionExp: sessionExp,
	}
}

func (s *jwtService) GenerateSessionToken(usuario string) (string, error) {
	claims := &SessionClaims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.SessionExp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.SecretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.SecretKey), nil
		default:
			return nil, errors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.ErrTokenExpired
	}

	return claims, nil
}

func (s *jwtService) GetSessionTTL() time.Duration {
	return s.SessionExp
}
