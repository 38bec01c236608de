package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type smtpEnv struct {
	Enabled  bool   `env:"SMTP_ENABLED" envDefault:"false"`
	Host     string `env:"SMTP_HOST" envDefault:""`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	From     string `env:"SMTP_FROM" envDefault:""`
	Username string `env:"SMTP_USERNAME" envDefault:""`
	Password string `env:"SMTP_PASSWORD" envDefault:""`
}

type smtp struct {
	raw smtpEnv
}

func NewSMTPConfig() (*smtp, error) {
	var raw smtpEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &smtp{raw: raw}, nil
}

func (cfg *smtp) Enabled() bool { return cfg.raw.Enabled }
func (cfg *smtp) Host() string  { return cfg.raw.Host }
func (cfg *smtp) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.raw.Host, cfg.raw.Port)
}
func (cfg *smtp) From() string     { return cfg.raw.From }
func (cfg *smtp) Username() string { return cfg.raw.Username }
func (cfg *smtp) Password() string { return cfg.raw.Password }
