package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
	"github.com/jhoicas/solar-marketplace-web/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa MarketplaceAPI.
var _ ports.MarketplaceAPI = (*Client)(nil)

const (
	headerRequestID   = "X-Request-ID"
	headerIdempotency = "Idempotency-Key"
	maxBodyBytes      = 1 << 20
)

// Client adaptador REST hacia la API del marketplace. Usa net/http; no reintenta.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el adaptador. timeout se aplica a cada llamada completa.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// WithHTTPClient reemplaza el http.Client (tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (c *Client) CurrentUser(ctx context.Context, cred entity.Credential) (*entity.Session, error) {
	var u userPayload
	if _, err := c.do(ctx, http.MethodGet, "/api/auth/user", cred, nil, nil, &u); err != nil {
		return nil, err
	}
	s := u.toEntity()
	s.Credential = cred
	return &s, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var raw json.RawMessage
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", entity.Credential{}, body, nil, &raw)
	if err != nil {
		return nil, err
	}

	var lr loginPayload
	if err := json.Unmarshal(raw, &lr); err != nil {
		return nil, fmt.Errorf("backend: login: %w: %v", domain.ErrUpstream, err)
	}
	user := lr.User
	if user == nil {
		// Algunos despliegues devuelven el usuario sin envolver.
		user = &userPayload{}
		if err := json.Unmarshal(raw, user); err != nil {
			return nil, fmt.Errorf("backend: login: %w: %v", domain.ErrUpstream, err)
		}
	}
	if user.ID == "" {
		return nil, fmt.Errorf("backend: login sin usuario: %w", domain.ErrUpstream)
	}

	cred := entity.Credential{Bearer: lr.Token, Cookie: cookieHeader(resp.Cookies())}
	if cred.Empty() {
		return nil, fmt.Errorf("backend: login sin credencial: %w", domain.ErrUpstream)
	}
	s := user.toEntity()
	s.Credential = cred
	return &ports.LoginResult{Session: s, Credential: cred}, nil
}

func (c *Client) Logout(ctx context.Context, cred entity.Credential) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", cred, nil, nil, nil)
	return err
}

// ── Orders ────────────────────────────────────────────────────────────────────

func (c *Client) GetOrder(ctx context.Context, cred entity.Credential, id string) (*entity.Order, error) {
	var o orderPayload
	if _, err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), cred, nil, nil, &o); err != nil {
		return nil, err
	}
	out := o.toEntity()
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context, cred entity.Credential) ([]entity.Order, error) {
	var list []orderPayload
	if _, err := c.do(ctx, http.MethodGet, "/api/orders", cred, nil, nil, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(list))
	for _, o := range list {
		out = append(out, o.toEntity())
	}
	return out, nil
}

// ── Catalog ───────────────────────────────────────────────────────────────────

func (c *Client) ListProducts(ctx context.Context, cred entity.Credential, filter entity.ProductFilter) ([]entity.Product, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	return c.listProducts(ctx, cred, "/api/products", q)
}

func (c *Client) GetProduct(ctx context.Context, cred entity.Credential, id string) (*entity.Product, error) {
	var p productPayload
	if _, err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), cred, nil, nil, &p); err != nil {
		return nil, err
	}
	out := p.toEntity()
	return &out, nil
}

func (c *Client) ListVendors(ctx context.Context, cred entity.Credential) ([]entity.Vendor, error) {
	var list []vendorPayload
	if _, err := c.do(ctx, http.MethodGet, "/api/vendors", cred, nil, nil, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Vendor, 0, len(list))
	for _, v := range list {
		out = append(out, v.toEntity())
	}
	return out, nil
}

func (c *Client) ListVendorProducts(ctx context.Context, cred entity.Credential, vendorID string) ([]entity.Product, error) {
	return c.listProducts(ctx, cred, "/api/vendors/"+url.PathEscape(vendorID)+"/products", nil)
}

func (c *Client) ListInstallers(ctx context.Context, cred entity.Credential) ([]entity.Installer, error) {
	var list []installerPayload
	if _, err := c.do(ctx, http.MethodGet, "/api/installers", cred, nil, nil, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Installer, 0, len(list))
	for _, i := range list {
		out = append(out, i.toEntity())
	}
	return out, nil
}

func (c *Client) listProducts(ctx context.Context, cred entity.Credential, path string, q url.Values) ([]entity.Product, error) {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var list []productPayload
	if _, err := c.do(ctx, http.MethodGet, path, cred, nil, nil, &list); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(list))
	for _, p := range list {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// ── Cart ──────────────────────────────────────────────────────────────────────

func (c *Client) GetCart(ctx context.Context, cred entity.Credential) (*entity.Cart, error) {
	var cp cartPayload
	if _, err := c.do(ctx, http.MethodGet, "/api/cart", cred, nil, nil, &cp); err != nil {
		return nil, err
	}
	out := cp.toEntity()
	return &out, nil
}

func (c *Client) AddToCart(ctx context.Context, cred entity.Credential, productID string, quantity int, idempotencyKey string) error {
	body := map[string]any{"productId": productID, "quantity": quantity}
	var hdr http.Header
	if idempotencyKey != "" {
		hdr = http.Header{headerIdempotency: []string{idempotencyKey}}
	}
	_, err := c.do(ctx, http.MethodPost, "/api/cart", cred, body, hdr, nil)
	return err
}

func (c *Client) RemoveFromCart(ctx context.Context, cred entity.Credential, itemID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(itemID), cred, nil, nil, nil)
	return err
}

// ── Transporte ────────────────────────────────────────────────────────────────

// do ejecuta la llamada y decodifica out si la respuesta es 2xx y out != nil.
func (c *Client) do(ctx context.Context, method, path string, cred entity.Credential, in any, hdr http.Header, out any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(headerRequestID, reqID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header[k] = v
	}
	switch {
	case cred.Bearer != "":
		req.Header.Set("Authorization", "Bearer "+cred.Bearer)
	case cred.Cookie != "":
		req.Header.Set("Cookie", cred.Cookie)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("backend: %s %s: %w", method, path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("request_id", reqID).Str("method", method).Str("path", path).Msg("backend no disponible")
		return nil, fmt.Errorf("backend: %s %s: %w: %v", method, path, domain.ErrTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("backend: leer respuesta: %w: %v", domain.ErrTransient, err)
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("backend: deserializar %s: %w: %v", path, domain.ErrUpstream, err)
		}
	}
	return resp, nil
}

// newAPIError traduce el status HTTP al sentinel de dominio y conserva el mensaje del backend.
func newAPIError(status int, raw []byte) *domain.APIError {
	var msg messagePayload
	_ = json.Unmarshal(raw, &msg)
	text := msg.Message
	if text == "" {
		text = msg.Error
	}
	return &domain.APIError{Status: status, Message: text, Kind: kindFor(status)}
}

func kindFor(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests, status >= 500:
		return domain.ErrTransient
	default:
		return domain.ErrUpstream
	}
}

// cookieHeader arma la cabecera Cookie a reenviar a partir de los Set-Cookie del login.
func cookieHeader(cookies []*http.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		if ck.Value == "" || ck.MaxAge < 0 {
			continue
		}
		parts = append(parts, ck.Name+"="+ck.Value)
	}
	return strings.Join(parts, "; ")
}
