package config

import (
	"os"
	"time"
)

const (
	jwtSecretEnv   = "JWT_SECRET"
	jwtIssuerEnv   = "JWT_ISSUER"
	jwtTTLHoursEnv = "JWT_TTL_HOURS"

	defaultJWTIssuer   = "big-telesales"
	defaultJWTTTLHours = 12
)

type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

func LoadSessionConfig() *SessionConfig {
	issuer := os.Getenv(jwtIssuerEnv)
	if issuer == "" {
		issuer = defaultJWTIssuer
	}

	return &SessionConfig{
		Secret: os.Getenv(jwtSecretEnv),
		Issuer: issuer,
		TTL:    time.Duration(positiveIntEnv(jwtTTLHoursEnv, defaultJWTTTLHours)) * time.Hour,
	}
}

func (c *SessionConfig) Validate() error {
	if c.Secret == "" {
		return ErrJWTSecretMissing
	}
	return nil
}
