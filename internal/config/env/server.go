package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type serverEnv struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8000"`

	DBReadTimeout   time.Duration `env:"DB_READ_TIMEOUT" envDefault:"5s"`
	DBWriteTimeout  time.Duration `env:"DB_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type server struct {
	raw serverEnv
}

func NewServerConfig() (*server, error) {
	var raw serverEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &server{raw: raw}, nil
}

func (cfg *server) Host() string { return cfg.raw.Host }
func (cfg *server) Port() int    { return cfg.raw.Port }
func (cfg *server) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host(), cfg.Port())
}

func (cfg *server) ReadDBTimeout() time.Duration   { return cfg.raw.DBReadTimeout }
func (cfg *server) WriteDBTimeout() time.Duration  { return cfg.raw.DBWriteTimeout }
func (cfg *server) ShutdownTimeout() time.Duration { return cfg.raw.ShutdownTimeout }
