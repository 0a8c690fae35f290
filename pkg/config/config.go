package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del gateway (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Session  SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP propio del gateway.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UpstreamConfig configuración del API REST de Blend Vinos que el gateway consume.
type UpstreamConfig struct {
	BaseURL string        // ej. https://api.blendvinos.com (sin barra final)
	Timeout time.Duration // timeout de red por petición saliente
}

// SessionConfig configuración de las sesiones de flujo de movimientos.
type SessionConfig struct {
	TTL time.Duration // inactividad máxima antes de que el janitor cierre la sesión
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, UPSTREAM_BASE_URL, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "blend-vinos-gateway"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(getString(v, "UPSTREAM_BASE_URL", ""), "/"),
			Timeout: time.Duration(getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			TTL: time.Duration(getInt(v, "SESSION_TTL_MINUTES", 30)) * time.Minute,
		},
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("config: UPSTREAM_BASE_URL es obligatorio")
	}

	return cfg, nil
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
		case string:
			n, err := strconv.Atoi(v.GetString(key))
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
