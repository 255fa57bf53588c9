package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/routing"
	"github.com/jhoicas/solar-marketplace-web/pkg/jwt"
)

// TokenConfig configuración de la cookie de sesión firmada.
type TokenConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionUseCase login, logout y lectura de la sesión del navegador.
// La autenticación real la hace el backend; aquí solo se guarda su resultado en una cookie firmada.
type SessionUseCase struct {
	api    ports.MarketplaceAPI
	cache  ports.QueryCache
	tokCfg TokenConfig
}

// NewSessionUseCase construye el caso de uso de sesión.
func NewSessionUseCase(api ports.MarketplaceAPI, cache ports.QueryCache, tokCfg TokenConfig) *SessionUseCase {
	return &SessionUseCase{api: api, cache: cache, tokCfg: tokCfg}
}

// Login autentica contra el backend y devuelve el token de la cookie junto con la sesión.
// Si el backend rechaza las credenciales, el error conserva su mensaje (*domain.APIError).
func (uc *SessionUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, *entity.Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return "", nil, domain.NewInvalidInput("email", "es requerido")
	}
	if in.Password == "" {
		return "", nil, domain.NewInvalidInput("password", "es requerido")
	}
	res, err := uc.api.Login(ctx, email, in.Password)
	if err != nil {
		return "", nil, err
	}
	session := res.Session
	session.Credential = res.Credential
	// Sesión nueva: nada de lo cacheado para este usuario sigue siendo válido.
	uc.cache.Invalidate(ports.UserPrefix(session.UserID))

	token, err := uc.Issue(&session)
	if err != nil {
		return "", nil, err
	}
	return token, &session, nil
}

// Logout cierra la sesión en el backend. Nunca se bloquea por la red: la caché del
// usuario se descarta siempre y el error del backend solo se devuelve para registrarlo.
func (uc *SessionUseCase) Logout(ctx context.Context, s *entity.Session) error {
	if s == nil {
		return nil
	}
	uc.Forget(s)
	if s.Credential.Empty() {
		return nil
	}
	if err := uc.api.Logout(ctx, s.Credential); err != nil {
		return fmt.Errorf("logout en backend: %w", err)
	}
	return nil
}

// Forget descarta todo lo cacheado para el usuario (logout o sesión expirada).
func (uc *SessionUseCase) Forget(s *entity.Session) {
	if s == nil {
		return
	}
	uc.cache.Invalidate(ports.UserPrefix(s.UserID))
}

// Refresh consulta GET /api/auth/user y reemite el token (el rol pudo cambiar).
// Siempre va al backend: invalida el slot antes de leer, la caché solo agrupa
// refrescos simultáneos. Devuelve domain.ErrUnauthorized si el backend ya no reconoce la sesión.
func (uc *SessionUseCase) Refresh(ctx context.Context, s *entity.Session) (string, *entity.Session, error) {
	if s == nil {
		return "", nil, domain.ErrUnauthorized
	}
	key := ports.CacheKey{Slot: ports.UserSlot(s.UserID, "session")}
	uc.cache.Invalidate(key.Slot)
	v, err := uc.cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return uc.api.CurrentUser(ctx, s.Credential)
	})
	if err != nil {
		return "", nil, err
	}
	current, ok := v.(*entity.Session)
	if !ok || current == nil {
		return "", nil, domain.ErrUnauthorized
	}
	fresh := *current
	fresh.Credential = s.Credential
	token, err := uc.Issue(&fresh)
	if err != nil {
		return "", nil, err
	}
	return token, &fresh, nil
}

// Issue firma la sesión para guardarla en la cookie.
func (uc *SessionUseCase) Issue(s *entity.Session) (string, error) {
	return jwt.Generate(uc.tokCfg.Secret, jwt.SessionData{
		UserID:        s.UserID,
		Role:          string(s.Role),
		DisplayName:   s.DisplayName,
		Email:         s.Email,
		AvatarURL:     s.AvatarURL,
		BackendBearer: s.Credential.Bearer,
		BackendCookie: s.Credential.Cookie,
	}, uc.tokCfg.Issuer, uc.tokCfg.ExpMinutes)
}

// Parse valida el token de la cookie y devuelve la sesión.
func (uc *SessionUseCase) Parse(token string) (*entity.Session, error) {
	data, err := jwt.Parse(uc.tokCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return &entity.Session{
		UserID:      data.UserID,
		Role:        entity.Role(data.Role),
		DisplayName: data.DisplayName,
		Email:       data.Email,
		AvatarURL:   data.AvatarURL,
		Credential: entity.Credential{
			Bearer: data.BackendBearer,
			Cookie: data.BackendCookie,
		},
	}, nil
}

// ToSessionResponse vista pública de la sesión (sin credenciales).
func ToSessionResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionResponse{
		UserID:      s.UserID,
		Role:        string(s.Role),
		DisplayName: s.DisplayName,
		Email:       s.Email,
		AvatarURL:   s.AvatarURL,
		HomePath:    routing.HomePath(s.Role),
	}
}
