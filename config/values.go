package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// values is the merged key/value view every getter reads from.
type values map[string]string

func (v values) get(key, fallback string) string {
	if value := strings.TrimSpace(v[key]); value != "" {
		return value
	}
	return fallback
}

func (v values) getBool(key string, fallback bool) bool {
	raw := v.get(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

func (v values) getInt(key string, fallback int64) (int64, error) {
	raw := v.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

// getDuration accepts Go duration strings ("30s") or a bare number of seconds.
func (v values) getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := v.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func (v values) getList(key string, fallback []string) []string {
	raw := v.get(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
