// Package cache implementa la caché de respuestas del backend que comparten las vistas.
//
// Cada clave tiene un Slot (identidad lógica, ej. "user:42:products") y un Variant
// (la petición concreta, ej. el filtro). Reglas:
//   - para un mismo Slot gana la última petición: la carga anterior se cancela y su
//     resultado se descarta con domain.ErrSuperseded;
//   - Invalidate sube la época del slot: una carga iniciada antes no escribe su resultado,
//     así la lectura posterior a una mutación siempre vuelve al backend;
//   - peticiones idénticas concurrentes comparten una sola carga (singleflight).
package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/solar-marketplace-web/internal/application/ports"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/pkg/logger"
)

var _ ports.QueryCache = (*QueryCache)(nil)

type entry struct {
	variant   string
	value     any
	createdAt time.Time
	expiresAt time.Time
}

// flight carga en curso de un slot.
type flight struct {
	variant string
	cancel  context.CancelFunc
}

type slotState struct {
	// epoch toma valores de QueryCache.gen, que nunca retrocede aunque el slot se recree.
	epoch  uint64
	latest string
	flight *flight
}

// QueryCache caché en memoria con TTL y tamaño máximo. Es la única dueña de su estado;
// las vistas solo leen (Fetch) y piden invalidación (Invalidate).
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	slots   map[string]*slotState
	group   singleflight.Group
	gen     uint64
	ttl     time.Duration
	maxSize int
	now     func() time.Time
	log     *logger.Logger
}

// Option configura la caché.
type Option func(*QueryCache)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(c *QueryCache) { c.now = now }
}

// WithLogger registra invalidaciones y descartes a nivel debug.
func WithLogger(l *logger.Logger) Option {
	return func(c *QueryCache) { c.log = l }
}

// NewQueryCache construye la caché.
func NewQueryCache(ttl time.Duration, maxSize int, opts ...Option) *QueryCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	c := &QueryCache{
		entries: make(map[string]*entry),
		slots:   make(map[string]*slotState),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch devuelve la entrada vigente o carga con load. Si mientras carga llega una petición
// con otra variante para el mismo slot, esta carga se cancela y devuelve domain.ErrSuperseded.
func (c *QueryCache) Fetch(ctx context.Context, key ports.CacheKey, load ports.Loader) (any, error) {
	c.mu.Lock()
	st := c.slot(key.Slot)
	st.latest = key.Variant
	if e, ok := c.entries[key.Slot]; ok && e.variant == key.Variant && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	if st.flight != nil && st.flight.variant != key.Variant {
		st.flight.cancel()
	}
	epoch := st.epoch
	c.mu.Unlock()

	flightKey := key.Slot + "\x00" + key.Variant + "\x00" + strconv.FormatUint(epoch, 10)
	v, err, _ := c.group.Do(flightKey, func() (any, error) {
		return c.load(ctx, key, st, epoch, load)
	})
	return v, err
}

func (c *QueryCache) load(ctx context.Context, key ports.CacheKey, st *slotState, epoch uint64, load ports.Loader) (any, error) {
	lctx, cancel := context.WithCancel(ctx)
	defer cancel()
	f := &flight{variant: key.Variant, cancel: cancel}

	c.mu.Lock()
	st.flight = f
	c.mu.Unlock()

	v, err := load(lctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if st.flight == f {
		st.flight = nil
	}
	if st.latest != key.Variant {
		c.log.Debug().Str("slot", key.Slot).Str("variant", key.Variant).Msg("cache: respuesta reemplazada, se descarta")
		return nil, domain.ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			return nil, domain.ErrSuperseded
		}
		return nil, err
	}
	if st.epoch != epoch {
		// Invalidado durante la carga: el llamador recibe su respuesta, pero no se guarda.
		c.log.Debug().Str("slot", key.Slot).Msg("cache: slot invalidado durante la carga, no se guarda")
		return v, nil
	}
	c.store(key, v)
	return v, nil
}

// Invalidate descarta las entradas cuyo slot empieza con slotPrefix y sube su época.
func (c *QueryCache) Invalidate(slotPrefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for slot := range c.entries {
		if strings.HasPrefix(slot, slotPrefix) {
			delete(c.entries, slot)
		}
	}
	c.gen++
	for slot, st := range c.slots {
		if !strings.HasPrefix(slot, slotPrefix) {
			continue
		}
		st.epoch = c.gen
		if st.flight == nil {
			delete(c.slots, slot)
		}
	}
	c.log.Debug().Str("prefix", slotPrefix).Msg("cache: invalidado")
}

// Clear vacía la caché completa.
func (c *QueryCache) Clear() {
	c.Invalidate("")
}

// Size número de entradas guardadas.
func (c *QueryCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// slot devuelve (o crea) el estado del slot. Requiere c.mu.
func (c *QueryCache) slot(name string) *slotState {
	st, ok := c.slots[name]
	if !ok {
		st = &slotState{epoch: c.gen}
		c.slots[name] = st
	}
	return st
}

// store guarda la entrada, expulsando la más antigua si se alcanzó el máximo. Requiere c.mu.
func (c *QueryCache) store(key ports.CacheKey, v any) {
	if _, exists := c.entries[key.Slot]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	now := c.now()
	c.entries[key.Slot] = &entry{
		variant:   key.Variant,
		value:     v,
		createdAt: now,
		expiresAt: now.Add(c.ttl),
	}
}

// evictOldest elimina la entrada más antigua. Requiere c.mu.
func (c *QueryCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	for key, e := range c.entries {
		if oldestKey == "" || e.createdAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = e.createdAt
		}
	}
	if oldestKey == "" {
		return
	}
	delete(c.entries, oldestKey)
}
