package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DefaultGeelarkAPI is the phone status endpoint used when GEELARK_API is unset
const DefaultGeelarkAPI = "https://openapi.geelark.com/open/v1/phone/status"

const (
	TransportSMTP     = "smtp"
	TransportPostmark = "postmark"
)

var (
	// ErrMissingConfig - one or more required environment variables are unset or empty
	ErrMissingConfig = errors.New("missing required environment variables")

	// ErrUnknownTransport - EMAIL_TRANSPORT names a transport we can't send with
	ErrUnknownTransport = errors.New("unknown email transport")
)

// Config holds everything a status check run needs. Built once at startup.
type Config struct {
	EmailSender   string `env:"EMAIL_SENDER"`
	EmailPassword string `env:"EMAIL_PASSWORD"`
	EmailReceiver string `env:"EMAIL_RECEIVER"`
	SMTPServer    string `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`

	GeelarkAPI  string        `env:"GEELARK_API"`
	BearerToken string        `env:"BEARER_TOKEN"`
	PhoneIDs    string        `env:"PHONE_IDS"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"`

	EmailTransport      string `env:"EMAIL_TRANSPORT" envDefault:"smtp"`
	PostmarkServerToken string `env:"POSTMARK_SERVER_TOKEN"`
}

// FromEnvironment loads the configuration from the process environment
func FromEnvironment() (*Config, error) {
	return Load(envMap(os.Environ()))
}

// Load parses the configuration from the given environment and validates it
func Load(environment map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if cfg.EmailReceiver == "" {
		cfg.EmailReceiver = cfg.EmailSender
	}
	if cfg.GeelarkAPI == "" {
		cfg.GeelarkAPI = DefaultGeelarkAPI
	}
	cfg.EmailTransport = strings.ToLower(strings.TrimSpace(cfg.EmailTransport))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required value is present. Formats are not checked.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"EMAIL_SENDER", c.EmailSender},
		{"EMAIL_PASSWORD", c.EmailPassword},
		{"BEARER_TOKEN", c.BearerToken},
		{"PHONE_IDS", c.PhoneIDs},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	switch c.EmailTransport {
	case TransportSMTP:
	case TransportPostmark:
		if c.PostmarkServerToken == "" {
			missing = append(missing, "POSTMARK_SERVER_TOKEN")
		}
	default:
		return errors.Wrapf(ErrUnknownTransport, "EMAIL_TRANSPORT=%q", c.EmailTransport)
	}

	if len(missing) > 0 {
		return errors.Wrap(ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// DeviceIDs returns the configured phone ids
func (c *Config) DeviceIDs() []string {
	return ParseDeviceIDs(c.PhoneIDs)
}

// ParseDeviceIDs splits a comma separated list, trimming whitespace and dropping empty entries
func ParseDeviceIDs(raw string) []string {
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// LoadDotEnv loads variables from .env style files. Variables already set in the
// process environment are not overridden.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Wrapf(err, "load env file %s", strings.Join(paths, ", "))
	}
	return nil
}

func envMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
