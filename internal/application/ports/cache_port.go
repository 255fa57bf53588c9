package ports

import "context"

// CacheKey identidad lógica de una petición. Slot agrupa las peticiones de una misma
// vista y usuario (ej. "user:42:products"); Variant es la petición concreta (ej. el filtro).
type CacheKey struct {
	Slot    string
	Variant string
}

// Loader carga el valor desde el backend.
type Loader func(ctx context.Context) (any, error)

// QueryCache caché de respuestas del backend, propiedad explícita de la aplicación.
// Para un mismo Slot gana la última petición; las anteriores devuelven domain.ErrSuperseded.
type QueryCache interface {
	Fetch(ctx context.Context, key CacheKey, load Loader) (any, error)
	// Invalidate descarta los slots con el prefijo dado; las cargas en curso no se guardan.
	Invalidate(slotPrefix string)
}

// UserSlot prefijo de los slots de un usuario.
func UserSlot(userID, resource string) string {
	return "user:" + userID + ":" + resource
}

// UserPrefix prefijo de todos los slots de un usuario.
func UserPrefix(userID string) string {
	return "user:" + userID + ":"
}
