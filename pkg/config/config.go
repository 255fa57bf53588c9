package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Session SessionConfig
	Cache   CacheConfig
	Payment PaymentConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig API REST del marketplace a la que se delegan datos y autenticación.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig cookie firmada (JWT) que guarda la sesión del navegador.
type SessionConfig struct {
	Secret       string
	CookieName   string
	Expiration   int // minutos
	Issuer       string
	SecureCookie bool
}

// CacheConfig caché de respuestas del backend.
type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

// PaymentConfig tasas de la calculadora de pagos. El crédito fiscal y el cargo
// de financiación se configuran por separado.
type PaymentConfig struct {
	TaxCreditRate            decimal.Decimal
	InstallmentFeeRate       decimal.Decimal
	DefaultInstallmentMonths int
	Locale                   string // formato de montos, ej. "en-US"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye y valida la configuración desde una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	taxRate, err := getDecimal(v, "PAYMENT_TAX_CREDIT_RATE", "0.30")
	if err != nil {
		return nil, err
	}
	feeRate, err := getDecimal(v, "PAYMENT_INSTALLMENT_FEE_RATE", "0.30")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "solar-marketplace-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:5000"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "sm_session"),
			Expiration:   getInt(v, "SESSION_EXPIRATION_MINUTES", 720),
			Issuer:       getString(v, "SESSION_ISSUER", "solar-marketplace-web"),
			SecureCookie: getBool(v, "SESSION_SECURE_COOKIE", false),
		},
		Cache: CacheConfig{
			TTL:        time.Duration(getInt(v, "CACHE_TTL_SECONDS", 60)) * time.Second,
			MaxEntries: getInt(v, "CACHE_MAX_ENTRIES", 1000),
		},
		Payment: PaymentConfig{
			TaxCreditRate:            taxRate,
			InstallmentFeeRate:       feeRate,
			DefaultInstallmentMonths: getInt(v, "PAYMENT_DEFAULT_INSTALLMENT_MONTHS", 36),
			Locale:                   getString(v, "PAYMENT_LOCALE", "en-US"),
		},
	}

	if cfg.Session.Secret == "" && cfg.App.Env == "development" {
		// Solo para desarrollo local; en otros entornos SESSION_SECRET es obligatorio.
		cfg.Session.Secret = "dev-insecure-session-secret"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("config: SESSION_SECRET requerido en entorno %q", c.App.Env)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT inválido: %d", c.HTTP.Port)
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: BACKEND_URL requerido")
	}
	if c.Payment.TaxCreditRate.IsNegative() || c.Payment.InstallmentFeeRate.IsNegative() {
		return fmt.Errorf("config: las tasas de pago no pueden ser negativas")
	}
	if c.Payment.DefaultInstallmentMonths <= 0 {
		return fmt.Errorf("config: PAYMENT_DEFAULT_INSTALLMENT_MONTHS debe ser positivo")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("config: CACHE_MAX_ENTRIES debe ser positivo")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("config: CACHE_TTL_SECONDS debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := getString(v, key, def)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido %q: %w", key, raw, err)
	}
	return d, nil
}
