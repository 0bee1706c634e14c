package env

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Lookup finds the environment variable with the given key, compared case-insensitive.
// The value is trimmed, and a variable that's only whitespace is treated as unset.
func Lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		return val, len(val) > 0
	}
	for _, kv := range os.Environ() {
		k, val, found := strings.Cut(kv, "=")
		if !found || !strings.EqualFold(k, key) {
			continue
		}
		val = strings.TrimSpace(val)
		return val, len(val) > 0
	}
	return "", false
}

// Parse reads the variable with [Lookup] and converts it with parse.
// The defaultVal is returned if the variable isn't set, is empty, or can't be parsed.
func Parse[T any](key string, defaultVal T, parse func(string) (T, error)) T {
	sval, ok := Lookup(key)
	if !ok {
		return defaultVal
	}
	val, err := parse(sval)
	if err != nil {
		return defaultVal
	}
	return val
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return defaultVal
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse] compared case-insensitive.
func Bool(key string, defaultVal bool) bool {
	sval, ok := Lookup(key)
	if !ok {
		return defaultVal
	}
	for _, v := range DefaultTrue {
		if strings.EqualFold(sval, v) {
			return true
		}
	}
	for _, v := range DefaultFalse {
		if strings.EqualFold(sval, v) {
			return false
		}
	}
	return defaultVal
}

// Int interprets an environment variable as a base 10 integer.
func Int(key string, defaultVal int) int {
	return Parse(key, defaultVal, strconv.Atoi)
}

// Duration interprets an environment variable as a [time.Duration], like "1.5s".
func Duration(key string, defaultVal time.Duration) time.Duration {
	return Parse(key, defaultVal, time.ParseDuration)
}

// Level interprets an environment variable as a [slog.Level], like "debug" or "WARN+2".
func Level(key string, defaultVal slog.Level) slog.Level {
	return Parse(key, defaultVal, func(s string) (slog.Level, error) {
		var level slog.Level
		err := level.UnmarshalText([]byte(s))
		return level, err
	})
}
