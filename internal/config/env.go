package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr       string
	GinMode       string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	SimTick       time.Duration
	DetectDelay   time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	simTick := 3 * time.Second
	if v := strings.TrimSpace(os.Getenv("SIM_TICK_INTERVAL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			simTick = d
		}
	}

	detectDelay := time.Second
	if v := strings.TrimSpace(os.Getenv("DETECT_DELAY")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			detectDelay = d
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:     secret,
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SimTick:       simTick,
		DetectDelay:   detectDelay,
	}
}
