package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadDBTimeout() time.Duration
	WriteDBTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	DSN() string
}

type Auth interface {
	JWTSecret() []byte
	TokenTTL() time.Duration
}

type SMTP interface {
	Enabled() bool
	Addr() string
	Host() string
	From() string
	Username() string
	Password() string
}
