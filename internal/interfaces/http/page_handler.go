package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/solar-marketplace-web/internal/application/auth"
	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/routing"
)

// PageHandler navegación: resuelve la vista con el router de roles y carga sus datos.
type PageHandler struct {
	catalog    *usecase.CatalogUseCase
	orders     *usecase.OrderUseCase
	cart       *usecase.CartUseCase
	dashboards *usecase.DashboardUseCase
	resp       *responder
}

// NewPageHandler construye el handler de navegación.
func NewPageHandler(
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	cart *usecase.CartUseCase,
	dashboards *usecase.DashboardUseCase,
	resp *responder,
) *PageHandler {
	return &PageHandler{catalog: catalog, orders: orders, cart: cart, dashboards: dashboards, resp: resp}
}

// viewLoader carga los datos de una vista. Devuelve el estado ("ready"/"not_found") y los datos.
type viewLoader func(ctx context.Context, c *fiber.Ctx, s *entity.Session, params map[string]string) (string, any, error)

// Navigate godoc
// @Summary      Navegar a una vista
// @Description  Resuelve la ruta según la sesión: redirige a "/" sin sesión, 404 si no existe, o devuelve el modelo de vista.
// @Tags         views
// @Produce      json
// @Success      200  {object}  dto.ViewResponse
// @Success      302
// @Failure      404  {object}  dto.ViewResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /{path} [get]
func (h *PageHandler) Navigate(c *fiber.Ctx) error {
	decision := routing.Resolve(sessionState(c), c.Path())
	if decision.Redirected() {
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}
	if decision.View == routing.ViewNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ViewResponse{
			View:    string(routing.ViewNotFound),
			Session: auth.ToSessionResponse(GetSession(c)),
			State:   usecase.StateNotFound,
		})
	}

	s := GetSession(c)
	state, data := usecase.StateReady, any(nil)
	if load := h.loader(decision.View); load != nil && s != nil {
		var err error
		state, data, err = load(c.UserContext(), c, s, decision.Params)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				// El backend ya no reconoce la sesión: vuelve a la landing como anónimo.
				h.resp.log.Info().Err(err).Str("path", c.Path()).Msg("sesión expirada durante la navegación")
				h.resp.expire(c)
				return c.Redirect(routing.LandingPath, fiber.StatusFound)
			}
			return h.resp.fail(c, err)
		}
	}

	return c.JSON(dto.ViewResponse{
		View:    string(decision.View),
		Params:  decision.Params,
		Session: auth.ToSessionResponse(s),
		State:   state,
		Data:    data,
	})
}

func (h *PageHandler) loader(view routing.ViewID) viewLoader {
	switch view {
	case routing.ViewBuyer:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, _ map[string]string) (string, any, error) {
			return ready(h.catalog.BuyerHome(ctx, s))
		}
	case routing.ViewMarketplace:
		return func(ctx context.Context, c *fiber.Ctx, s *entity.Session, _ map[string]string) (string, any, error) {
			in := dto.ProductFilterRequest{Category: c.Query("category"), Search: c.Query("search")}
			if err := validateStruct(in); err != nil {
				return "", nil, err
			}
			return ready(h.catalog.Marketplace(ctx, s, in))
		}
	case routing.ViewInstallerDirectory:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, _ map[string]string) (string, any, error) {
			return ready(h.catalog.Installers(ctx, s))
		}
	case routing.ViewProductDetail:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, p map[string]string) (string, any, error) {
			out, err := h.catalog.ProductDetail(ctx, s, p["id"])
			if errors.Is(err, domain.ErrNotFound) {
				return usecase.StateNotFound, nil, nil
			}
			return ready(out, err)
		}
	case routing.ViewOrderTracking:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, p map[string]string) (string, any, error) {
			out, err := h.orders.Track(ctx, s, p["id"])
			if err != nil {
				return "", nil, err
			}
			return out.State, out, nil
		}
	case routing.ViewCart:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, _ map[string]string) (string, any, error) {
			return ready(h.cart.Get(ctx, s))
		}
	case routing.ViewBuyerDashboard:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, _ map[string]string) (string, any, error) {
			return ready(h.dashboards.Buyer(ctx, s))
		}
	case routing.ViewVendorDashboard:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, _ map[string]string) (string, any, error) {
			return ready(h.dashboards.Vendor(ctx, s))
		}
	case routing.ViewAdminDashboard:
		return func(ctx context.Context, _ *fiber.Ctx, s *entity.Session, _ map[string]string) (string, any, error) {
			return ready(h.dashboards.Admin(ctx, s))
		}
	}
	return nil
}

func ready(v any, err error) (string, any, error) {
	if err != nil {
		return "", nil, err
	}
	return usecase.StateReady, v, nil
}
