package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/solar-marketplace-web/internal/application/auth"
	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
)

// AuthHandler maneja login, logout y lectura de la sesión del navegador.
type AuthHandler struct {
	uc   *auth.SessionUseCase
	resp *responder
}

// NewAuthHandler construye el handler de sesión.
func NewAuthHandler(uc *auth.SessionUseCase, resp *responder) *AuthHandler {
	return &AuthHandler{uc: uc, resp: resp}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /session/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return h.resp.fail(c, err)
	}

	token, session, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && (errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrForbidden)) {
			h.resp.log.Info().Str("email", in.Email).Int("status", apiErr.Status).Msg("login rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "LOGIN_FAILED",
				Message: nonEmpty(apiErr.Message, "credenciales inválidas"),
			})
		}
		return h.resp.fail(c, err)
	}

	h.resp.cookies.set(c, token)
	return c.JSON(auth.ToSessionResponse(session))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Siempre responde 200 y borra la cookie, aunque el backend no responda.
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /session/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSession(c)); err != nil {
		h.resp.log.Warn().Err(err).Msg("logout en backend falló; sesión local cerrada igualmente")
	}
	h.resp.cookies.clear(c)
	c.Locals(LocalSession, nil)
	return c.JSON(fiber.Map{"status": "logged_out"})
}

// Current godoc
// @Summary      Sesión actual
// @Description  Consulta al backend y reemite la cookie (el rol pudo cambiar).
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /session [get]
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	token, session, err := h.uc.Refresh(c.UserContext(), GetSession(c))
	if err != nil {
		return h.resp.fail(c, err)
	}
	h.resp.cookies.set(c, token)
	return c.JSON(auth.ToSessionResponse(session))
}
