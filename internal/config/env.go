package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Environment variables that override file values.
const (
	EnvSeed       = "TUNNEL_SEED"
	EnvWidth      = "TUNNEL_WIDTH"
	EnvHeight     = "TUNNEL_HEIGHT"
	EnvFullscreen = "TUNNEL_FULLSCREEN"
	EnvTitle      = "TUNNEL_TITLE"
	EnvBloom      = "TUNNEL_BLOOM"
	EnvShowPath   = "TUNNEL_SHOW_PATH"
)

// ApplyEnv overrides fields from lookup (e.g. os.LookupEnv). Unparsable values are skipped
// and reported together; the remaining overrides still apply.
func (p *Prefs) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := parseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			p.Seed = seed
		}
	}
	num(EnvWidth, &p.Window.Width)
	num(EnvHeight, &p.Window.Height)
	flag(EnvFullscreen, &p.Window.Fullscreen)
	str(EnvTitle, &p.Window.Title)
	flag(EnvBloom, &p.Bloom.Enabled)
	flag(EnvShowPath, &p.Debug.ShowPath)

	if len(errs) > 0 {
		return fmt.Errorf("config: env: %w", errors.Join(errs...))
	}
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}
