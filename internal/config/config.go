package config

import (
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cours-de-latin/uktag"
)

// Config is the root configuration shared by the server and the CLI.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Debug  DebugConfig  `yaml:"debug"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"UKTAG_SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"UKTAG_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"UKTAG_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"UKTAG_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"UKTAG_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"UKTAG_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBatchWords   int           `yaml:"max_batch_words"  env:"UKTAG_SERVER_MAX_BATCH_WORDS"  env-default:"1000"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DataConfig locates the lexical resources.
type DataConfig struct {
	Dir        string `yaml:"dir"        env:"UKTAG_DATA_DIR"   env-default:"data"`
	Dictionary string `yaml:"dictionary" env:"UKTAG_DICTIONARY"`
}

// DictionaryPath returns the dictionary dump path, defaulting to
// uktag.DictionaryFile inside Dir.
func (d DataConfig) DictionaryPath() string {
	if d.Dictionary != "" {
		return d.Dictionary
	}
	return filepath.Join(d.Dir, uktag.DictionaryFile)
}

// DebugConfig controls the compound debug logs.
type DebugConfig struct {
	Compounds   bool   `yaml:"compounds"    env:"UKTAG_DEBUG_COMPOUNDS" env-default:"false"`
	UnknownPath string `yaml:"unknown_path" env:"UKTAG_DEBUG_UNKNOWN"   env-default:"compounds-unknown.txt"`
	TaggedPath  string `yaml:"tagged_path"  env:"UKTAG_DEBUG_TAGGED"    env-default:"compounds-tagged.txt"`
}

// CacheConfig sizes the dictionary lookup cache. Size 0 disables it.
type CacheConfig struct {
	Size int `yaml:"size" env:"UKTAG_CACHE_SIZE" env-default:"10000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"UKTAG_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"UKTAG_LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings for the server.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"UKTAG_CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"UKTAG_CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"UKTAG_CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"UKTAG_CORS_MAX_AGE"         env-default:"86400"`
}

// Origins returns AllowedOrigins split on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns AllowedMethods split on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns AllowedHeaders split on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
