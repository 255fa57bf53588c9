package entity

// Role rol de un usuario del marketplace.
type Role string

// Roles válidos para Session.
const (
	RoleBuyer     Role = "buyer"
	RoleVendor    Role = "vendor"
	RoleAdmin     Role = "admin"
	RoleInstaller Role = "installer"
)

// Known indica si el rol pertenece al enum conocido.
func (r Role) Known() bool {
	switch r {
	case RoleBuyer, RoleVendor, RoleAdmin, RoleInstaller:
		return true
	}
	return false
}

// Credential credencial del backend que se reenvía en cada llamada del usuario.
// Se usa Bearer si el backend devolvió token; si no, la cabecera Cookie capturada en el login.
type Credential struct {
	Bearer string
	Cookie string
}

// Empty indica que no hay credencial para reenviar.
func (c Credential) Empty() bool { return c.Bearer == "" && c.Cookie == "" }

// Session identidad autenticada del cliente actual. Como máximo una activa por cliente.
type Session struct {
	UserID      string
	Role        Role
	DisplayName string
	Email       string
	AvatarURL   string // opcional
	Credential  Credential
}

// SessionStatus estado de carga de la sesión.
type SessionStatus string

const (
	SessionLoading       SessionStatus = "loading"
	SessionAnonymous     SessionStatus = "anonymous"
	SessionAuthenticated SessionStatus = "authenticated"
)

// SessionState lo que el router sabe de la sesión al momento de navegar.
type SessionState struct {
	Status  SessionStatus
	Session *Session
}

// Anonymous estado sin sesión.
func Anonymous() SessionState { return SessionState{Status: SessionAnonymous} }

// Authenticated estado con la sesión indicada.
func Authenticated(s *Session) SessionState {
	if s == nil {
		return Anonymous()
	}
	return SessionState{Status: SessionAuthenticated, Session: s}
}

// IsAuthenticated true solo si hay sesión y ya terminó de cargar.
func (s SessionState) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated && s.Session != nil
}
