// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-profile application. It is populated by merging values from a
// .env file, environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings: password storage, logging and
	// the build version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational store and object store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and upload limits of the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Session holds the session cookie and session backend settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// PlaintextPasswords stores and compares passwords without hashing.
	// It exists only for compatibility with stores written by the legacy
	// deployment; new deployments should leave it off.
	// Env: APP_PLAINTEXT_PASSWORDS
	PlaintextPasswords bool `env:"PLAINTEXT_PASSWORDS"`

	// PasswordHashCost is the bcrypt cost used for new passwords.
	// Zero selects bcrypt.DefaultCost.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST" validate:"omitempty,min=4,max=31"`

	// LogLevel is the zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint when no build version was linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080" validate:"required,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	// MaxUploadSize is the largest registration form (file included) the
	// server accepts, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432" validate:"gt=0"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Objects holds the object store settings used for uploaded files.
	Objects Objects `envPrefix:"OBJECTS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" for a local file
	// or "pgx" for PostgreSQL.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" envDefault:"sqlite3" validate:"oneof=sqlite3 pgx"`

	// DSN is the data source name. For sqlite3 it is a file path
	// (e.g. "users.db"); for pgx a PostgreSQL URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" envDefault:"users.db" validate:"required"`
}

// Objects holds object store settings.
type Objects struct {
	// Backend selects the client implementation: "s3" (AWS SDK) or "minio".
	// Env: STORAGE_OBJECTS_BACKEND
	Backend string `env:"BACKEND" envDefault:"s3" validate:"oneof=s3 minio"`

	// Bucket is the bucket uploads are written to. Uploads are rejected when
	// it is empty; registration without a file still works.
	// Env: STORAGE_OBJECTS_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the bucket region.
	// Env: STORAGE_OBJECTS_REGION
	Region string `env:"REGION" envDefault:"us-east-1" validate:"required"`

	// Prefix is the first segment of every object key.
	// Env: STORAGE_OBJECTS_PREFIX
	Prefix string `env:"PREFIX" envDefault:"uploads"`

	// URLExpires is the validity of pre-signed download links.
	// Env: STORAGE_OBJECTS_URL_EXPIRES
	URLExpires time.Duration `env:"URL_EXPIRES" envDefault:"300s" validate:"gt=0"`

	// Endpoint overrides the service endpoint (e.g. "http://127.0.0.1:9000"
	// for a local MinIO). Required for the minio backend.
	// Env: STORAGE_OBJECTS_ENDPOINT
	Endpoint string `env:"ENDPOINT" validate:"required_if=Backend minio"`

	// AccessKey and SecretKey are static credentials. When empty the s3
	// backend falls back to the default AWS credential chain.
	// Env: STORAGE_OBJECTS_ACCESS_KEY, STORAGE_OBJECTS_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// UsePathStyle forces path-style addressing for S3 compatible stores.
	// Env: STORAGE_OBJECTS_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`
}

// Session holds settings for the signed-in session.
type Session struct {
	// Backend selects where sessions live: "cookie" keeps a signed token in
	// the cookie itself, "redis" keeps an opaque id in the cookie and the
	// username in Redis.
	// Env: SESSION_BACKEND
	Backend string `env:"BACKEND" envDefault:"cookie" validate:"oneof=cookie redis"`

	// CookieName is the name of the session cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME" envDefault:"session" validate:"required"`

	// CookieSecure sets the Secure attribute on the session cookie. Enable
	// it when the server sits behind TLS.
	// Env: SESSION_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// SignKey is the HMAC key signing cookie sessions. When empty an
	// ephemeral key is generated at startup.
	// Env: SESSION_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// Issuer is the "iss" claim of cookie session tokens.
	// Env: SESSION_ISSUER
	Issuer string `env:"ISSUER" envDefault:"go-user-profile"`

	// Duration is how long a session and its cookie stay valid.
	// Env: SESSION_DURATION
	Duration time.Duration `env:"DURATION" envDefault:"24h" validate:"gt=0"`

	// Redis holds the Redis connection used by the redis backend.
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings for the Redis session backend.
type Redis struct {
	// Address is "host:port" of the Redis server.
	// Env: SESSION_REDIS_ADDRESS
	Address string `env:"ADDRESS" envDefault:"localhost:6379"`

	// Password is the optional AUTH password.
	// Env: SESSION_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the logical database number.
	// Env: SESSION_REDIS_DB
	DB int `env:"DB" validate:"min=0"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory, if present
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
