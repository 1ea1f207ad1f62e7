package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type gameServerEnvironment struct {
	PersistMethod      string
	RedisHost          string
	RedisPort          string
	RedisPW            string
	RedisDB            string
	PostgresHost       string
	PostgresPort       string
	PostgresDB         string
	PostgresUser       string
	PostgresPW         string
	PostgresSSLMode    string
	HTTPPort           string
	JwtSecret          string
	TokenExpiryMinutes string
	CorsAllowedOrigins string
	LogLevel           string
}

// Env is a helper object for accessing environment variables.
var Env = &gameServerEnvironment{
	PersistMethod:      "PERSIST_METHOD",
	RedisHost:          "REDIS_HOST",
	RedisPort:          "REDIS_PORT",
	RedisPW:            "REDIS_PW",
	RedisDB:            "REDIS_DB",
	PostgresHost:       "POSTGRES_HOST",
	PostgresPort:       "POSTGRES_PORT",
	PostgresDB:         "POSTGRES_DB",
	PostgresUser:       "POSTGRES_USER",
	PostgresPW:         "POSTGRES_PASSWORD",
	PostgresSSLMode:    "POSTGRES_SSL_MODE",
	HTTPPort:           "HTTP_PORT",
	JwtSecret:          "JWT_SECRET",
	TokenExpiryMinutes: "TOKEN_EXPIRY_MINUTES",
	CorsAllowedOrigins: "CORS_ALLOWED_ORIGINS",
	LogLevel:           "LOG_LEVEL",
}

func (g *gameServerEnvironment) GetPersistMethod() string {
	method := os.Getenv(g.PersistMethod)
	if method == "" {
		return "memory"
	}
	return method
}

func (g *gameServerEnvironment) GetRedisHost() string {
	host := os.Getenv(g.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", g.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (g *gameServerEnvironment) GetRedisPort() int {
	portStr := os.Getenv(g.RedisPort)
	if portStr == "" {
		msg := fmt.Sprintf("%s is not defined", g.RedisPort)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (g *gameServerEnvironment) GetRedisPW() string {
	return os.Getenv(g.RedisPW)
}

func (g *gameServerEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(g.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (g *gameServerEnvironment) GetPostgresHost() string {
	host := os.Getenv(g.PostgresHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (g *gameServerEnvironment) GetPostgresPort() int {
	portStr := os.Getenv(g.PostgresPort)
	if portStr == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresPort)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Postgres port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (g *gameServerEnvironment) GetPostgresUser() string {
	user := os.Getenv(g.PostgresUser)
	if user == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresUser)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return user
}

func (g *gameServerEnvironment) GetPostgresPW() string {
	pw := os.Getenv(g.PostgresPW)
	if pw == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresPW)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return pw
}

func (g *gameServerEnvironment) GetPostgresDB() string {
	db := os.Getenv(g.PostgresDB)
	if db == "" {
		msg := fmt.Sprintf("%s is not defined", g.PostgresDB)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return db
}

func (g *gameServerEnvironment) GetPostgresSSLMode() string {
	mode := os.Getenv(g.PostgresSSLMode)
	if mode == "" {
		return "disable"
	}
	return mode
}

func (g *gameServerEnvironment) GetHTTPPort() int {
	portStr := os.Getenv(g.HTTPPort)
	if portStr == "" {
		return 8080
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid HTTP port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (g *gameServerEnvironment) GetJwtSecret() string {
	secret := os.Getenv(g.JwtSecret)
	if secret == "" {
		msg := fmt.Sprintf("%s is not defined", g.JwtSecret)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return secret
}

func (g *gameServerEnvironment) GetTokenExpiryMinutes() int {
	expiryStr := os.Getenv(g.TokenExpiryMinutes)
	if expiryStr == "" {
		// Two days, matching the session length expected by the web client.
		return 2880
	}
	expiry, err := strconv.Atoi(expiryStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid token expiry %s", expiryStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return expiry
}

func (g *gameServerEnvironment) GetCorsAllowedOrigins() []string {
	origins := os.Getenv(g.CorsAllowedOrigins)
	if origins == "" {
		return []string{"http://localhost:3000"}
	}
	return strings.Split(origins, ",")
}

func (g *gameServerEnvironment) GetZeroLogLogLevel() zerolog.Level {
	l := os.Getenv(g.LogLevel)
	switch strings.ToLower(l) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
