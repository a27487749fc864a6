package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the simulator settings.
type Config struct {
	Height     int    // Board height in rows
	Width      int    // Board width in columns
	LayoutFile string // Optional board drawing to start from
	Prompt     string // Prompt shown by the interactive loop
	Debug      bool   // Log ignored commands
}

const (
	keyHeight = "TOYROBOT_HEIGHT"
	keyWidth  = "TOYROBOT_WIDTH"
	keyLayout = "TOYROBOT_LAYOUT"
	keyPrompt = "TOYROBOT_PROMPT"
	keyDebug  = "TOYROBOT_DEBUG"
)

// Default returns the built-in settings: a 5x5 board.
func Default() Config {
	return Config{Height: 5, Width: 5, Prompt: "> "}
}

// Load reads settings from env files (".env" when none are given) and the
// process environment. The environment wins over files; missing files are
// skipped.
func Load(files ...string) (Config, error) {
	fileVals, err := godotenv.Read(files...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read env file: %w", err)
		}
		fileVals = map[string]string{}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	cfg := Default()
	if cfg.Height, err = getInt(lookup, keyHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getInt(lookup, keyWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(keyLayout); ok {
		cfg.LayoutFile = v
	}
	if v, ok := lookup(keyPrompt); ok {
		cfg.Prompt = v
	}
	if v, ok := lookup(keyDebug); ok && v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean: %w", keyDebug, err)
		}
	}
	return cfg, nil
}

// getInt returns the integer value of key, or def when the key is unset or empty.
func getInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
