package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/internal/application/auth"
	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/application/ports/portstest"
	"github.com/jhoicas/solar-marketplace-web/internal/application/usecase"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/payment"
	"github.com/jhoicas/solar-marketplace-web/internal/infrastructure/cache"
	"github.com/jhoicas/solar-marketplace-web/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/solar-marketplace-web/internal/interfaces/http"
	"github.com/jhoicas/solar-marketplace-web/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const cookieName = "sm_session"

type testEnv struct {
	app      *fiber.App
	api      *portstest.FakeMarketplace
	sessions *auth.SessionUseCase
}

// buildTestApp arma el BFF completo sobre un backend en memoria.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	api := portstest.NewFakeMarketplace()
	for _, u := range []entity.Session{
		{UserID: "b1", Role: entity.RoleBuyer, DisplayName: "Bea", Email: "buyer@example.com", Credential: entity.Credential{Bearer: "tok-b1"}},
		{UserID: "v1", Role: entity.RoleVendor, DisplayName: "Vic", Email: "vendor@example.com", Credential: entity.Credential{Bearer: "tok-v1"}},
		{UserID: "a1", Role: entity.RoleAdmin, DisplayName: "Ada", Email: "admin@example.com", Credential: entity.Credential{Bearer: "tok-a1"}},
	} {
		api.Users[u.Email] = u
	}
	api.Products = []entity.Product{{ID: "p1", VendorID: "v1", Name: "Panel 400W", Category: "panels", Price: decimal.NewFromInt(25000), Stock: 3}}

	qc := cache.NewQueryCache(time.Minute, 100)
	calc, err := payment.NewCalculator(payment.DefaultRates())
	require.NoError(t, err)
	f := money.NewFormatter("en-US", "$")

	paymentUC := usecase.NewPaymentUseCase(calc, f, pdf.NewMarotoQuoteGenerator("Solar Marketplace", f), 36)
	catalogUC := usecase.NewCatalogUseCase(api, qc, paymentUC, f)
	orderUC := usecase.NewOrderUseCase(api, qc, f)
	cartUC := usecase.NewCartUseCase(api, qc, f)
	sessions := auth.NewSessionUseCase(api, qc, auth.TokenConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "solar-test"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionUC:   sessions,
		CatalogUC:   catalogUC,
		OrderUC:     orderUC,
		CartUC:      cartUC,
		DashboardUC: usecase.NewDashboardUseCase(catalogUC, orderUC, cartUC, paymentUC),
		PaymentUC:   paymentUC,
		Cookie:      apphttp.CookieConfig{Name: cookieName, ExpMinutes: 60},
	})
	return &testEnv{app: app, api: api, sessions: sessions}
}

// cookieFor firma la cookie de sesión del usuario con ese email.
func (e *testEnv) cookieFor(t *testing.T, email string) string {
	t.Helper()
	u := e.api.Users[email]
	tok, err := e.sessions.Issue(&u)
	require.NoError(t, err)
	return cookieName + "=" + tok
}

func (e *testEnv) do(t *testing.T, method, target, cookie string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func sessionCookieCleared(resp *http.Response) bool {
	for _, c := range resp.Cookies() {
		if c.Name == cookieName && c.Value == "" {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// Navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestNavigate_AnonimoEnLanding(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.ViewResponse](t, resp)
	assert.Equal(t, "landing", view.View)
	assert.Nil(t, view.Session)
}

func TestNavigate_AnonimoRedirigeALanding(t *testing.T) {
	env := buildTestApp(t)

	for _, path := range []string{"/marketplace", "/product/p1", "/vendor-dashboard", "/orders/o1"} {
		resp := env.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/", resp.Header.Get("Location"), path)
	}
	assert.Equal(t, 0, env.api.Calls("ListProducts"))
}

func TestNavigate_RutaDesconocida(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/no-such-page", env.cookieFor(t, "buyer@example.com"), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[dto.ViewResponse](t, resp).View)
}

func TestNavigate_HomePorRol(t *testing.T) {
	env := buildTestApp(t)
	cases := map[string]string{
		"buyer@example.com":  "buyer_dashboard",
		"vendor@example.com": "vendor_dashboard",
		"admin@example.com":  "admin_dashboard",
	}
	for email, want := range cases {
		resp := env.do(t, http.MethodGet, "/", env.cookieFor(t, email), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, email)
		view := decode[dto.ViewResponse](t, resp)
		assert.Equal(t, want, view.View, email)
		assert.Equal(t, "ready", view.State, email)
	}
}

func TestNavigate_CompradorEnAdmin(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/admin-dashboard", env.cookieFor(t, "buyer@example.com"), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, env.api.Calls("ListVendors"))
}

func TestNavigate_DetalleDeProducto(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/product/p1", env.cookieFor(t, "buyer@example.com"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[struct {
		View   string            `json:"view"`
		Params map[string]string `json:"params"`
		Data   dto.ProductDetailResponse
	}](t, resp)
	assert.Equal(t, "product_detail", view.View)
	assert.Equal(t, "p1", view.Params["id"])
	assert.Equal(t, "902.78", view.Data.Installment.MonthlyPayment.StringFixed(2))
}

func TestNavigate_PedidoInexistenteEsEstadoVacio(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/orders/missing", env.cookieFor(t, "buyer@example.com"), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decode[dto.ViewResponse](t, resp)
	assert.Equal(t, "order_tracking", view.View)
	assert.Equal(t, "not_found", view.State)
}

// Un 401 del backend durante la navegación cierra la sesión y vuelve a la landing.
func TestNavigate_BackendRechazaSesion(t *testing.T) {
	env := buildTestApp(t)
	env.api.SetErr(&domain.APIError{Status: 401, Kind: domain.ErrUnauthorized})

	resp := env.do(t, http.MethodGet, "/marketplace", env.cookieFor(t, "buyer@example.com"), nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.True(t, sessionCookieCleared(resp))
}

func TestNavigate_ErrorTransitorio(t *testing.T) {
	env := buildTestApp(t)
	env.api.SetErr(fmt.Errorf("dial tcp: %w", domain.ErrTransient))

	resp := env.do(t, http.MethodGet, "/installers", env.cookieFor(t, "buyer@example.com"), nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "TRANSIENT", body.Code)
	assert.True(t, body.Dismissible)
}

func TestNavigate_CookieInvalidaEsAnonimo(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/cart", cookieName+"=garbage", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.True(t, sessionCookieCleared(resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/session/login", "", dto.LoginRequest{Email: "vendor@example.com", Password: "pw"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "vendor", out.Role)
	assert.Equal(t, "/vendor-dashboard", out.HomePath)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
}

func TestLogin_MensajeDelBackendTextual(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/session/login", "", dto.LoginRequest{Email: "nobody@example.com", Password: "pw"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "LOGIN_FAILED", body.Code)
	assert.Equal(t, "Invalid email or password", body.Message)
}

func TestLogin_Validacion(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/session/login", "", dto.LoginRequest{Email: "not-an-email", Password: "pw"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "email", body.Field)
}

func TestLogout_BackendCaido(t *testing.T) {
	env := buildTestApp(t)
	env.api.LogoutErr = fmt.Errorf("dial tcp: %w", domain.ErrTransient)

	resp := env.do(t, http.MethodPost, "/session/logout", env.cookieFor(t, "buyer@example.com"), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, sessionCookieCleared(resp))
	assert.Equal(t, 1, env.api.Calls("Logout"))
}

func TestSession_Expirada(t *testing.T) {
	env := buildTestApp(t)
	env.api.SetErr(&domain.APIError{Status: 401, Message: "Unauthorized", Kind: domain.ErrUnauthorized})

	resp := env.do(t, http.MethodGet, "/session", env.cookieFor(t, "buyer@example.com"), nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "SESSION_EXPIRED", body.Code)
	assert.Equal(t, "/", body.Redirect)
	assert.True(t, sessionCookieCleared(resp))
}

func TestSession_SinCookie(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/session", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculadora
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculator_OK(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/calculator?base_price=25000&payment_type=installment&months=36", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.PaymentCalculationResponse](t, resp)
	assert.Equal(t, "32500.00", out.TotalPrice.StringFixed(2))
	assert.Equal(t, "$902.78", out.Labels.MonthlyPayment)
}

func TestCalculator_Validacion(t *testing.T) {
	env := buildTestApp(t)
	cases := []struct {
		query string
		field string
	}{
		{"base_price=abc&payment_type=full", "base_price"},
		{"base_price=1000&payment_type=lease", "payment_type"},
		{"base_price=1000&payment_type=installment", "installment_months"},
		{"base_price=1000&payment_type=installment&months=x", "months"},
		{"base_price=-5&payment_type=full", "base_price"},
	}
	for _, tc := range cases {
		resp := env.do(t, http.MethodGet, "/calculator?"+tc.query, "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, tc.query)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "VALIDATION", body.Code, tc.query)
		assert.Equal(t, tc.field, body.Field, tc.query)
	}
}

func TestCalculator_QuotePDF(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/calculator/quote.pdf?base_price=9000&payment_type=full&product_name=Kit", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_AgregarRelee(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.cookieFor(t, "buyer@example.com")

	resp := env.do(t, http.MethodGet, "/cart", cookie, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/cart/items", cookie, dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.CartResponse](t, resp)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "$50,000.00", out.TotalLabel)
	assert.Equal(t, 2, env.api.Calls("GetCart"))

	resp = env.do(t, http.MethodDelete, "/cart/items/item-p1", cookie, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.CartResponse](t, resp).Count)
}

func TestCart_RequiereSesion(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/cart/items", "", dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCart_CantidadInvalida(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/cart/items", env.cookieFor(t, "buyer@example.com"), dto.AddToCartRequest{ProductID: "p1", Quantity: 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "quantity", decode[dto.ErrorResponse](t, resp).Field)
}
