package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
)

// CartHandler mutaciones del carrito (protegido).
type CartHandler struct {
	uc   *usecase.CartUseCase
	resp *responder
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase, resp *responder) *CartHandler {
	return &CartHandler{uc: uc, resp: resp}
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return h.resp.fail(c, err)
	}
	out, err := h.uc.Add(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.resp.fail(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Produce      json
// @Param        id  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.CartResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.resp.fail(c, err)
	}
	return c.JSON(out)
}
