package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the explicit configuration object handed to component
// constructors. It is built once at startup from the process environment.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	ResendAPIKey    string
	ResendFromEmail string

	AcceptedOrigins []string

	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int

	// AlertEmails maps an emergency service key (police, ambulance,
	// firebrigade) to its registered recipient address.
	AlertEmails map[string]string
}

// Load builds a Config from the process environment, applying defaults.
func Load() Config {
	env := New()

	return Config{
		Port:        GetString(env, "PORT", "5000"),
		Env:         GetString(env, "ENV", "development"),
		DatabaseURL: GetString(env, "DATABASE_URL", ""),

		ResendAPIKey:    GetString(env, "RESEND_API_KEY", ""),
		ResendFromEmail: GetString(env, "RESEND_FROM_EMAIL", "Emergency Alert System <alerts@yourdomain.com>"),

		AcceptedOrigins: splitAndTrim(GetString(env, "ACCEPTED_ORIGINS", "http://localhost:5173,http://localhost:5174")),

		ReadTimeoutSeconds:  GetInt(env, "READ_TIMEOUT_SECONDS", 180),
		WriteTimeoutSeconds: GetInt(env, "WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeoutSeconds:  GetInt(env, "IDLE_TIMEOUT_SECONDS", 180),

		AlertEmails: map[string]string{
			"police":      GetString(env, "ALERT_EMAIL_POLICE", "shaalu5050@gmail.com"),
			"ambulance":   GetString(env, "ALERT_EMAIL_AMBULANCE", "chakrabortysouma20@gmail.com"),
			"firebrigade": GetString(env, "ALERT_EMAIL_FIREBRIGADE", "faizshaikh29086@gmail.com"),
		},
	}
}

// IsProduction reports whether the runtime mode flag is set to production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
