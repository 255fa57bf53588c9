// Package routing decide qué vista corresponde a cada navegación según la sesión y el rol.
//
// Las rutas se declaran en una tabla; de ella se deriva, una sola vez, el conjunto de
// vistas alcanzables por rol. Resolve es una función pura sobre (SessionState, path).
package routing

import (
	"strings"

	"github.com/jhoicas/solar-marketplace-web/internal/domain/entity"
)

// ViewID identificador de vista de primer nivel.
type ViewID string

const (
	ViewLanding            ViewID = "landing"
	ViewBuyer              ViewID = "buyer"
	ViewMarketplace        ViewID = "marketplace"
	ViewInstallerDirectory ViewID = "installer_directory"
	ViewProductDetail      ViewID = "product_detail"
	ViewOrderTracking      ViewID = "order_tracking"
	ViewCart               ViewID = "cart"
	ViewBuyerDashboard     ViewID = "buyer_dashboard"
	ViewVendorDashboard    ViewID = "vendor_dashboard"
	ViewAdminDashboard     ViewID = "admin_dashboard"
	ViewNotFound           ViewID = "not_found"

	// viewHome se resuelve al dashboard del rol.
	viewHome ViewID = "home"
)

// LandingPath destino de toda redirección sin sesión.
const LandingPath = "/"

// Decision resultado de resolver una navegación. Si RedirectTo no está vacío, View no aplica.
type Decision struct {
	View       ViewID
	Params     map[string]string
	RedirectTo string
}

// Redirected indica si la navegación termina en redirección.
func (d Decision) Redirected() bool { return d.RedirectTo != "" }

type access int

const (
	accessPublic        access = iota // visible con o sin sesión
	accessAuthenticated               // cualquier rol
	accessRole                        // solo el rol indicado
)

type route struct {
	pattern string
	view    ViewID
	access  access
	role    entity.Role
}

// routes tabla declarativa de navegación.
var routes = []route{
	{pattern: "/", view: viewHome, access: accessPublic},
	{pattern: "/buyer", view: ViewBuyer, access: accessAuthenticated},
	{pattern: "/marketplace", view: ViewMarketplace, access: accessAuthenticated},
	{pattern: "/installers", view: ViewInstallerDirectory, access: accessAuthenticated},
	{pattern: "/product/:id", view: ViewProductDetail, access: accessAuthenticated},
	{pattern: "/orders/:id", view: ViewOrderTracking, access: accessAuthenticated},
	{pattern: "/cart", view: ViewCart, access: accessAuthenticated},
	{pattern: "/buyer-dashboard", view: ViewBuyerDashboard, access: accessRole, role: entity.RoleBuyer},
	{pattern: "/vendor-dashboard", view: ViewVendorDashboard, access: accessRole, role: entity.RoleVendor},
	{pattern: "/admin-dashboard", view: ViewAdminDashboard, access: accessRole, role: entity.RoleAdmin},
}

// homes dashboard de inicio por rol efectivo.
var homes = map[entity.Role]ViewID{
	entity.RoleBuyer:  ViewBuyerDashboard,
	entity.RoleVendor: ViewVendorDashboard,
	entity.RoleAdmin:  ViewAdminDashboard,
}

// reachable vistas alcanzables por rol efectivo, derivado de routes.
var reachable = buildReachable()

func buildReachable() map[entity.Role]map[ViewID]bool {
	out := make(map[entity.Role]map[ViewID]bool, len(homes))
	for role, home := range homes {
		set := map[ViewID]bool{home: true}
		for _, r := range routes {
			switch r.access {
			case accessPublic, accessAuthenticated:
				set[r.view] = true
			case accessRole:
				if r.role == role {
					set[r.view] = true
				}
			}
		}
		out[role] = set
	}
	return out
}

// EffectiveRole rol con el que se enruta: vendor y admin conservan el suyo;
// buyer, installer y cualquier valor fuera del enum enrutan como buyer.
func EffectiveRole(role entity.Role) entity.Role {
	switch role {
	case entity.RoleVendor, entity.RoleAdmin:
		return role
	default:
		return entity.RoleBuyer
	}
}

// HomeView dashboard de inicio del rol.
func HomeView(role entity.Role) ViewID {
	return homes[EffectiveRole(role)]
}

// HomePath ruta del dashboard de inicio del rol.
func HomePath(role entity.Role) string {
	home := HomeView(role)
	for _, r := range routes {
		if r.view == home {
			return r.pattern
		}
	}
	return LandingPath
}

// Reachable indica si el rol puede ver la vista.
func Reachable(role entity.Role, view ViewID) bool {
	return reachable[EffectiveRole(role)][view]
}

// Resolve elige la vista para path:
//   - ruta desconocida → not_found, con o sin sesión;
//   - sin sesión (o cargando) → solo landing; cualquier otra ruta conocida redirige a "/";
//   - con sesión, "/" es el dashboard del rol y las vistas de otro rol son not_found.
func Resolve(state entity.SessionState, path string) Decision {
	r, params, ok := match(Normalize(path))
	if !ok {
		return Decision{View: ViewNotFound}
	}
	if !state.IsAuthenticated() {
		if r.view == viewHome {
			return Decision{View: ViewLanding}
		}
		return Decision{RedirectTo: LandingPath}
	}

	role := state.Session.Role
	view := r.view
	if view == viewHome {
		view = HomeView(role)
	}
	if !Reachable(role, view) {
		return Decision{View: ViewNotFound}
	}
	return Decision{View: view, Params: params}
}

// Normalize quita query y fragmento, y barras finales; vacío equivale a "/".
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func match(path string) (route, map[string]string, bool) {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	for _, r := range routes {
		if params, ok := matchPattern(r.pattern, segs); ok {
			return r, params, true
		}
	}
	return route{}, nil, false
}

func matchPattern(pattern string, segs []string) (map[string]string, bool) {
	psegs := strings.Split(strings.Trim(pattern, "/"), "/")
	if len(psegs) != len(segs) {
		return nil, false
	}
	var params map[string]string
	for i, p := range psegs {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
