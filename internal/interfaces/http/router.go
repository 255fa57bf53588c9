package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/solar-marketplace-web/internal/application/auth"
	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
	"github.com/jhoicas/solar-marketplace-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC   *auth.SessionUseCase
	CatalogUC   *usecase.CatalogUseCase
	OrderUC     *usecase.OrderUseCase
	CartUC      *usecase.CartUseCase
	DashboardUC *usecase.DashboardUseCase
	PaymentUC   *usecase.PaymentUseCase
	Cookie      CookieConfig
	Logger      *logger.Logger
}

// Router registra las rutas del BFF. La navegación (GET /*) va al final: todo lo
// que no es una acción lo resuelve el router de vistas.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	resp := &responder{sessions: deps.SessionUC, cookies: deps.Cookie, log: log.Named("http")}

	app.Use(SessionMiddleware(deps.SessionUC, deps.Cookie))

	// Sesión (público)
	authHandler := NewAuthHandler(deps.SessionUC, resp)
	session := app.Group("/session")
	session.Post("/login", authHandler.Login)
	session.Post("/logout", authHandler.Logout)
	session.Get("/", RequireSession(), authHandler.Current)

	// Calculadora (público: es una función pura sobre la entrada)
	calcHandler := NewCalculatorHandler(deps.PaymentUC, resp)
	app.Get("/calculator", calcHandler.Calculate)
	app.Get("/calculator/quote.pdf", calcHandler.QuotePDF)

	// Carrito (protegido)
	cartHandler := NewCartHandler(deps.CartUC, resp)
	cart := app.Group("/cart/items", RequireSession())
	cart.Post("/", cartHandler.Add)
	cart.Delete("/:id", cartHandler.Remove)

	// Navegación
	pageHandler := NewPageHandler(deps.CatalogUC, deps.OrderUC, deps.CartUC, deps.DashboardUC, resp)
	app.Get("/*", pageHandler.Navigate)
}
