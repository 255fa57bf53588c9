package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
)

// CalculatorHandler calculadora de pagos y cotización en PDF.
type CalculatorHandler struct {
	uc   *usecase.PaymentUseCase
	resp *responder
}

// NewCalculatorHandler construye el handler.
func NewCalculatorHandler(uc *usecase.PaymentUseCase, resp *responder) *CalculatorHandler {
	return &CalculatorHandler{uc: uc, resp: resp}
}

// Calculate godoc
// @Summary      Calcular plan de pago
// @Tags         calculator
// @Produce      json
// @Param        base_price    query  string  true   "Precio base"
// @Param        payment_type  query  string  true   "full | installment"
// @Param        months        query  int     false  "Plazo en meses (installment)"
// @Success      200  {object}  dto.PaymentCalculationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /calculator [get]
func (h *CalculatorHandler) Calculate(c *fiber.Ctx) error {
	in, err := h.parse(c)
	if err != nil {
		return h.resp.fail(c, err)
	}
	out, err := h.uc.Calculate(in)
	if err != nil {
		return h.resp.fail(c, err)
	}
	return c.JSON(out)
}

// QuotePDF godoc
// @Summary      Cotización de financiación en PDF
// @Tags         calculator
// @Produce      application/pdf
// @Param        base_price    query  string  true   "Precio base"
// @Param        payment_type  query  string  true   "full | installment"
// @Param        months        query  int     false  "Plazo en meses (installment)"
// @Param        product_name  query  string  false  "Producto cotizado"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /calculator/quote.pdf [get]
func (h *CalculatorHandler) QuotePDF(c *fiber.Ctx) error {
	in, err := h.parse(c)
	if err != nil {
		return h.resp.fail(c, err)
	}
	pdf, filename, err := h.uc.QuotePDF(c.UserContext(), GetSession(c), in)
	if err != nil {
		return h.resp.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *CalculatorHandler) parse(c *fiber.Ctx) (dto.CalculatorRequest, error) {
	in := dto.CalculatorRequest{
		BasePrice:   c.Query("base_price"),
		PaymentType: c.Query("payment_type"),
		ProductName: c.Query("product_name"),
	}
	if raw := c.Query("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			return in, domain.NewInvalidInput("months", "debe ser un número entero")
		}
		in.Months = months
	}
	return in, validateStruct(in)
}
