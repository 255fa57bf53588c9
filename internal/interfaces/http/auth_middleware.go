package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/solar-marketplace-web/internal/application/auth"
	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/routing"
)

// Locals key para la sesión del navegador en Fiber.
const LocalSession = "session"

// CookieConfig cookie HttpOnly que guarda el token de sesión.
type CookieConfig struct {
	Name       string
	Secure     bool
	ExpMinutes int
}

func (cc CookieConfig) set(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cc.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   cc.ExpMinutes * 60,
		Expires:  time.Now().Add(time.Duration(cc.ExpMinutes) * time.Minute),
		Secure:   cc.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (cc CookieConfig) clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   cc.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionMiddleware lee la cookie de sesión y deja la sesión en c.Locals.
// Sin cookie la petición sigue como anónima; una cookie inválida o expirada se borra.
func SessionMiddleware(sessions *auth.SessionUseCase, cookies CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookies.Name)
		if token == "" {
			return c.Next()
		}
		s, err := sessions.Parse(token)
		if err != nil {
			cookies.clear(c)
			return c.Next()
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// RequireSession corta con 401 si no hay sesión (acciones JSON, no navegación).
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "SESSION_EXPIRED",
				Message:  "inicie sesión para continuar",
				Redirect: routing.LandingPath,
			})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware) o nil.
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// sessionState estado de sesión para el router de vistas.
func sessionState(c *fiber.Ctx) entity.SessionState {
	return entity.Authenticated(GetSession(c))
}
