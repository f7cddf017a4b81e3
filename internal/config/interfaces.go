package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadHeaderTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	PartsCollection() string
	ServicesCollection() string
	DSN() string
}

type Auth interface {
	JWTSecret() string
}
