package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	// Dir es el directorio donde se guardan las colecciones (un archivo
	// JSON por clave, equivalente al localStorage del panel original).
	Dir string
}

type AuthConfig struct {
	// LoginDelay simula la latencia de autenticación del panel original.
	LoginDelay time.Duration
}

type JWTConfig struct {
	SecretKey  string
	SessionTTL time.Duration
}

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
	JWT     JWTConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: archivo .env no encontrado, se usan valores por defecto.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Storage: StorageConfig{
			Dir: getEnv("STORAGE_DIR", "./data"),
		},
		Auth: AuthConfig{
			LoginDelay: getDurationMs("LOGIN_DELAY_MS", 700*time.Millisecond),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "gestion-mantenimiento-dev"),
			SessionTTL: time.Hour * 24,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationMs(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}
