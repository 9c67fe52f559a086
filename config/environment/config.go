package environment

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StorageFirestore = "firestore"
	StorageMemory    = "memory"

	MirrorDisk = "disk"
	MirrorS3   = "s3"
	MirrorNone = "none"
)

// Config holds every runtime setting of the API server.
type Config struct {
	Port              string        `env:"PORT" validate:"required,numeric"`
	LogLevel          string        `env:"LOG_LEVEL" validate:"loglevel"`
	JWTSecret         string        `env:"JWT_SECRET"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL" validate:"gt=0"`
	StorageBackend    string        `env:"STORAGE_BACKEND" validate:"storage"`
	FirebaseKey       string        `env:"FIREBASE_CREDENTIALS_BASE64" validate:"required_if=StorageBackend firestore"`
	FirebaseProjectID string        `env:"FIREBASE_PROJECT_ID" validate:"required_if=StorageBackend firestore"`
	OutputDir         string        `env:"OUTPUT_DIR" validate:"required"`
	MirrorBackend     string        `env:"MIRROR_BACKEND" validate:"mirror"`
	S3Bucket          string        `env:"S3_BUCKET" validate:"required_if=MirrorBackend s3"`
	S3Region          string        `env:"S3_REGION"`
	S3Endpoint        string        `env:"S3_ENDPOINT" validate:"omitempty,url"`
	S3AccessKey       string        `env:"S3_ACCESS_KEY"`
	S3SecretKey       string        `env:"S3_SECRET_KEY"`
	CORSAllowOrigins  []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// ErrMissingSecret is returned when no JWT secret is configured for a
// persistent storage backend.
var ErrMissingSecret = errors.New("JWT_SECRET environment variable is missing")

// devSecret is only accepted together with the memory backend.
const devSecret = "fibonacci-api-dev-secret"

var defaultConfig = Config{
	Port:             "8080",
	LogLevel:         "info",
	AccessTokenTTL:   20 * time.Minute,
	StorageBackend:   StorageFirestore,
	OutputDir:        "output",
	MirrorBackend:    MirrorDisk,
	S3Region:         "us-east-1",
	CORSAllowOrigins: []string{"*"},
	ShutdownTimeout:  10 * time.Second,
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	allowed := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	return allowed[fieldLevel.Field().String()]
}

func validateStorage(fieldLevel validator.FieldLevel) bool {
	switch fieldLevel.Field().String() {
	case StorageFirestore, StorageMemory:
		return true
	}
	return false
}

func validateMirror(fieldLevel validator.FieldLevel) bool {
	switch fieldLevel.Field().String() {
	case MirrorDisk, MirrorS3, MirrorNone:
		return true
	}
	return false
}

func (c *Config) validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	if err := validate.RegisterValidation("storage", validateStorage); err != nil {
		return err
	}
	if err := validate.RegisterValidation("mirror", validateMirror); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.JWTSecret == "" {
		if c.StorageBackend != StorageMemory {
			return ErrMissingSecret
		}
		c.JWTSecret = devSecret
	}

	return nil
}

type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
	args                []string
}

// WithDisableFlagsParsing skips command-line flags, used by tests.
func WithDisableFlagsParsing(disable bool) InitOption {
	return func(o *initOptions) {
		o.disableFlagsParsing = disable
	}
}

// WithArgs parses the given arguments instead of os.Args.
func WithArgs(args []string) InitOption {
	return func(o *initOptions) {
		o.args = args
	}
}

// Load builds the configuration: defaults, then .env, then environment
// variables, then command-line flags.
func Load(opts ...InitOption) (*Config, error) {
	options := &initOptions{args: os.Args[1:]}
	for _, opt := range opts {
		opt(options)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	cfg := defaultConfig
	cfg.CORSAllowOrigins = append([]string(nil), defaultConfig.CORSAllowOrigins...)

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if !options.disableFlagsParsing {
		fs := flag.NewFlagSet("fibonacci-api", flag.ContinueOnError)
		fs.StringVar(&cfg.Port, "p", cfg.Port, "port to listen on")
		fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "logger level")
		fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: firestore or memory")
		fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "directory for the session file mirror")
		fs.StringVar(&cfg.MirrorBackend, "m", cfg.MirrorBackend, "mirror backend: disk, s3 or none")
		if err := fs.Parse(options.args); err != nil {
			return nil, err
		}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
