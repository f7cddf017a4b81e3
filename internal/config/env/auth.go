package envconfig

import "github.com/caarlos0/env/v11"

type authEnv struct {
	JWTSecret string `env:"AUTH_JWT_SECRET,required"`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &auth{raw: raw}, nil
}

func (cfg *auth) JWTSecret() string { return cfg.raw.JWTSecret }
