// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional JSON or TOML
// config file, and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied before flags, file and environment.
const (
	DefaultAddress     = ":8000"
	DefaultFrontendURL = "https://criptopedia-frontend.onrender.com"
	DefaultAdminUser   = "admin"
	DefaultAdminPass   = "admin123"
	DefaultSessionTTL  = 12 * time.Hour
	DefaultLogLevel    = "info"
	DefaultConfigPath  = "config.json"
)

// devOrigins are always allowed to call the API from a browser.
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
	DefaultFrontendURL,
}

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"address" toml:"address"`

	// DatabaseDSN holds the PostgreSQL connection string. Empty keeps the catalog in memory.
	DatabaseDSN string `json:"database_dsn" toml:"database_dsn"`

	// Config is the path to the Config file.
	Config string `json:"-" toml:"-"`

	// LogLevel is the minimum zap level.
	LogLevel string `json:"log_level" toml:"log_level"`

	// YouTubeAPIKey authenticates video searches. Empty disables the provider.
	YouTubeAPIKey string `json:"youtube_api_key" toml:"youtube_api_key"`

	// FrontendURL is the deployed front-end origin allowed by CORS.
	FrontendURL string `json:"frontend_url" toml:"frontend_url"`

	// AdminUsername and AdminPassword are the credentials accepted by /auth/login.
	AdminUsername string `json:"admin_username" toml:"admin_username"`
	AdminPassword string `json:"admin_password" toml:"admin_password"`

	// SessionTTL is how long a login token stays valid.
	SessionTTL Duration `json:"session_ttl" toml:"session_ttl"`

	// TLSCert and TLSKey switch the server to HTTPS when both are set.
	TLSCert string `json:"tls_cert" toml:"tls_cert"`
	TLSKey  string `json:"tls_key" toml:"tls_key"`
}

// Duration is a time.Duration read from config files as a Go duration string.
type Duration time.Duration

// UnmarshalText parses values like "90m" or "12h".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It exits the process on invalid configuration.
func Parse() *Options {
	opts, err := Load(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("error while loading config: %v", err)
	}
	return opts
}

// Load builds Options from args, the config file they point at, and getenv,
// in that order of precedence (later sources win).
func Load(args []string, getenv func(string) string) (*Options, error) {
	opts := &Options{}
	var ttl string

	fs := flag.NewFlagSet("criptopedia", flag.ContinueOnError)
	fs.StringVar(&opts.Port, "a", DefaultAddress, "run on ip:port server")
	fs.StringVar(&opts.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&opts.Config, "config", DefaultConfigPath, "path to config file")
	fs.StringVar(&opts.Config, "c", DefaultConfigPath, "path to config file (shorthand)")
	fs.StringVar(&opts.LogLevel, "l", DefaultLogLevel, "log level")
	fs.StringVar(&opts.YouTubeAPIKey, "k", "", "YouTube Data API key")
	fs.StringVar(&opts.FrontendURL, "f", DefaultFrontendURL, "frontend origin allowed by CORS")
	fs.StringVar(&ttl, "ttl", DefaultSessionTTL.String(), "admin session lifetime")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.AdminUsername = DefaultAdminUser
	opts.AdminPassword = DefaultAdminPass

	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid -ttl: %w", err)
	}
	opts.SessionTTL = Duration(d)

	// Override flags with environment variables if set
	if configPath := getenv("CONFIG"); configPath != "" {
		opts.Config = configPath
	}

	if opts.Config != "" {
		if err := loadFile(opts.Config, opts); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(opts, getenv); err != nil {
		return nil, err
	}
	return opts, nil
}

// loadFile merges the config file into opts. A missing file is ignored.
func loadFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, opts)
	} else {
		err = json.Unmarshal(data, opts)
	}
	if err != nil {
		return fmt.Errorf("error while parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(opts *Options, getenv func(string) string) error {
	if serverAddress := getenv("SERVER_ADDRESS"); serverAddress != "" {
		opts.Port = serverAddress
	}
	if port := getenv("PORT"); port != "" {
		opts.Port = ":" + port
	}
	if dsn := getenv("DATABASE_DSN"); dsn != "" {
		opts.DatabaseDSN = dsn
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		opts.LogLevel = level
	}
	if key := getenv("YOUTUBE_API_KEY"); key != "" {
		opts.YouTubeAPIKey = key
	}
	if frontend := getenv("FRONTEND_URL"); frontend != "" {
		opts.FrontendURL = frontend
	}
	if ttl := getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		opts.SessionTTL = Duration(d)
	}
	if cert := getenv("TLS_CERT"); cert != "" {
		opts.TLSCert = cert
	}
	if key := getenv("TLS_KEY"); key != "" {
		opts.TLSKey = key
	}
	return nil
}

// AllowedOrigins returns the CORS origins: the fixed development origins
// plus the configured frontend URL, without trailing slashes or duplicates.
func (o *Options) AllowedOrigins() []string {
	candidates := append([]string{}, devOrigins...)
	candidates = append(candidates, o.FrontendURL)

	seen := make(map[string]bool, len(candidates))
	origins := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimRight(strings.TrimSpace(c), "/")
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		origins = append(origins, c)
	}
	return origins
}

// TLSEnabled reports whether both a certificate and a key are configured.
func (o *Options) TLSEnabled() bool {
	return o.TLSCert != "" && o.TLSKey != ""
}
