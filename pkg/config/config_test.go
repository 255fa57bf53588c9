package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/solar-marketplace-web/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "sm_session", cfg.Session.CookieName)
	assert.NotEmpty(t, cfg.Session.Secret, "desarrollo usa un secreto local")
	assert.Equal(t, "0.3", cfg.Payment.TaxCreditRate.String())
	assert.Equal(t, "0.3", cfg.Payment.InstallmentFeeRate.String())
	assert.Equal(t, 36, cfg.Payment.DefaultInstallmentMonths)
}

func TestFromViper_TasasIndependientes(t *testing.T) {
	v := viper.New()
	v.Set("PAYMENT_TAX_CREDIT_RATE", "0.26")
	v.Set("PAYMENT_INSTALLMENT_FEE_RATE", "0.12")
	v.Set("BACKEND_URL", "https://api.example.com/")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "0.26", cfg.Payment.TaxCreditRate.String())
	assert.Equal(t, "0.12", cfg.Payment.InstallmentFeeRate.String())
	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
}

func TestFromViper_ProduccionExigeSecreto(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := config.FromViper(v)
	assert.Error(t, err)

	v.Set("SESSION_SECRET", "s3cr3t")
	_, err = config.FromViper(v)
	assert.NoError(t, err)
}

func TestFromViper_TasaInvalida(t *testing.T) {
	v := viper.New()
	v.Set("PAYMENT_TAX_CREDIT_RATE", "treinta")
	_, err := config.FromViper(v)
	assert.Error(t, err)

	v.Set("PAYMENT_TAX_CREDIT_RATE", "-0.1")
	_, err = config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_CacheInvalida(t *testing.T) {
	for _, tc := range []struct {
		key   string
		value any
	}{
		{"CACHE_TTL_SECONDS", 0},
		{"CACHE_TTL_SECONDS", "-5"},
		{"CACHE_MAX_ENTRIES", 0},
	} {
		v := viper.New()
		v.Set(tc.key, tc.value)
		_, err := config.FromViper(v)
		assert.Error(t, err, "%s=%v", tc.key, tc.value)
	}

	v := viper.New()
	v.Set("CACHE_TTL_SECONDS", "120")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
}
