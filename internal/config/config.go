package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/pokedex-table/internal/app"
	"github.com/atomicstack/pokedex-table/internal/catalog"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	EnvFile string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCatalogURL      = "POKEDEX_TABLE_CATALOG_URL"
	envLimit           = "POKEDEX_TABLE_LIMIT"
	envConcurrency     = "POKEDEX_TABLE_CONCURRENCY"
	envRequestInterval = "POKEDEX_TABLE_REQUEST_INTERVAL"
	envTimeout         = "POKEDEX_TABLE_TIMEOUT"
	envWidth           = "POKEDEX_TABLE_WIDTH"
	envHeight          = "POKEDEX_TABLE_HEIGHT"
	envShowFooter      = "POKEDEX_TABLE_FOOTER"
	envTrace           = "POKEDEX_TABLE_TRACE"
	envLogFile         = "POKEDEX_TABLE_LOG_FILE"
	envEnvFile         = "POKEDEX_TABLE_ENV_FILE"

	defaultEnvFile = ".env"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values from the
// env file are overridden by the environment, which is overridden by flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	envFile, err := mergeEnvFile(env)
	if err != nil {
		return Config{}, err
	}

	flags := pflag.NewFlagSet("pokedex-table", pflag.ContinueOnError)
	flags.SetOutput(new(strings.Builder))

	catalogURL := flags.String("catalog-url", envOrDefault(env, envCatalogURL, catalog.DefaultBaseURL), "base URL of the catalog API")
	limit := flags.Int("limit", envOrInt(env, envLimit, catalog.DefaultLimit), "number of entries requested from the listing")
	concurrency := flags.Int("concurrency", envOrInt(env, envConcurrency, 0), "maximum concurrent detail requests (0 is unlimited)")
	interval := flags.Duration("request-interval", envOrDuration(env, envRequestInterval, 0), "minimum spacing between requests (0 disables pacing)")
	timeout := flags.Duration("timeout", envOrDuration(env, envTimeout, 0), "per-request timeout (0 disables the timeout)")
	width := flags.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := flags.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := flags.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := flags.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := flags.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	switch {
	case *limit < 0:
		return Config{}, fmt.Errorf("limit must be >= 0 (got %d)", *limit)
	case *concurrency < 0:
		return Config{}, fmt.Errorf("concurrency must be >= 0 (got %d)", *concurrency)
	case *interval < 0:
		return Config{}, fmt.Errorf("request-interval must be >= 0 (got %s)", *interval)
	case *timeout < 0:
		return Config{}, fmt.Errorf("timeout must be >= 0 (got %s)", *timeout)
	case *width < 0:
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	case *height < 0:
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogURL:      *catalogURL,
			Limit:           *limit,
			Concurrency:     *concurrency,
			RequestInterval: *interval,
			Timeout:         *timeout,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		EnvFile: envFile,
		Flags: map[string]string{
			"catalogURL":      *catalogURL,
			"limit":           strconv.Itoa(*limit),
			"concurrency":     strconv.Itoa(*concurrency),
			"requestInterval": interval.String(),
			"timeout":         timeout.String(),
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// mergeEnvFile fills env with entries from the dotenv file that are not
// already set. An explicitly named file must exist; the default is optional.
// It returns the path that was read, if any.
func mergeEnvFile(env map[string]string) (string, error) {
	path, explicit := env[envEnvFile]
	if strings.TrimSpace(path) == "" {
		path, explicit = defaultEnvFile, false
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return path, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the catalog URL is usable.
func Validate(cfg Config) error {
	u, err := url.Parse(cfg.App.CatalogURL)
	if err != nil {
		return fmt.Errorf("catalog-url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("catalog-url must be http or https (got %q)", cfg.App.CatalogURL)
	}
	if u.Host == "" {
		return fmt.Errorf("catalog-url is missing a host (got %q)", cfg.App.CatalogURL)
	}
	return nil
}
