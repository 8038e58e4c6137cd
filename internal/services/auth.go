package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/pkg/service"
)

// AuthService emite sesiones simuladas: no hay base de usuarios ni
// verificación de contraseña, solo el retardo artificial del panel original
// y un token firmado para el resto de la sesión.
type AuthService struct {
	jwtService service.JWTService
	loginDelay time.Duration
	logger     *zap.Logger
}

func NewAuthService(jwtService service.JWTService, loginDelay time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		jwtService: jwtService,
		loginDelay: loginDelay,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	// Retardo simulado, cancelable si el cliente corta la petición.
	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	token, err := s.jwtService.GenerateSessionToken(payload.Usuario)
	if err != nil {
		s.logger.Error("no se pudo firmar el token de sesión", zap.Error(err))
		return nil, err
	}

	s.logger.Info("sesión iniciada", zap.String("usuario", payload.Usuario))
	return &dto.LoginResponseDTO{
		Token:   token,
		Usuario: payload.Usuario,
	}, nil
}
