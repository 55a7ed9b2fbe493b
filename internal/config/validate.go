package config

import (
	"fmt"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically;
// callers that override fields afterwards should call it again.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBatchWords <= 0 {
		return fmt.Errorf("server.max_batch_words must be > 0 (got %d)", c.Server.MaxBatchWords)
	}
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be >= 0 (got %d)", c.Cache.Size)
	}
	if c.Debug.Compounds && (c.Debug.UnknownPath == "" || c.Debug.TaggedPath == "") {
		return fmt.Errorf("debug: unknown_path and tagged_path are required when compounds is on")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}
