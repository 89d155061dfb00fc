package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Ko-stant/levelgen-engine/internal/mapgen"
)

type serverConfig struct {
	Port     string
	Defaults mapgen.Config
}

// loadConfig reads the server environment, with .env overrides for local
// development. Generation parameters here are only the defaults; every
// request may override them.
func loadConfig() serverConfig {
	_ = godotenv.Load(".env")

	return serverConfig{
		Port: getenv("APP_PORT", "8080"),
		Defaults: mapgen.Config{
			Width:             getenvInt("LEVEL_WIDTH", 50),
			Height:            getenvInt("LEVEL_HEIGHT", 50),
			RegionCount:       getenvInt("LEVEL_REGIONS", 0),
			MinRegionDistance: getenvInt("LEVEL_MIN_DISTANCE", 4),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
