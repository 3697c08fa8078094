package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/AiredaleDev/blorus/internal/game"
)

type Config struct {
	HTTPAddr string
	LogLevel string

	// MinPlayers and MaxPlayers bound the lobby size; the engine supports
	// 2 to 4 seats.
	MinPlayers int
	MaxPlayers int

	// ColorOrder is the order colors are assigned as players join, which is
	// also the turn order.
	ColorOrder []game.TileColor
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	cfg := Config{
		HTTPAddr:   getenv("HTTP_ADDR", ":8080"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		MinPlayers: clampPlayers(getenvInt("MIN_PLAYERS", 2)),
		MaxPlayers: clampPlayers(getenvInt("MAX_PLAYERS", 4)),
		ColorOrder: parseColors(getenv("PLAYER_COLORS", "red,blue,yellow,green")),
	}
	// An inverted range would cap the lobby below the start threshold and no
	// game could ever begin.
	if cfg.MaxPlayers < cfg.MinPlayers {
		cfg.MaxPlayers = cfg.MinPlayers
	}
	return cfg
}

func clampPlayers(n int) int {
	if n < 2 {
		return 2
	}
	if n > 4 {
		return 4
	}
	return n
}

// parseColors turns a comma-separated color list into a turn order. Unknown
// or repeated names are dropped; a list with fewer than four valid entries
// falls back to the default order.
func parseColors(s string) []game.TileColor {
	seen := map[game.TileColor]bool{}
	var out []game.TileColor
	for _, name := range strings.Split(s, ",") {
		c, ok := game.ColorByName(strings.TrimSpace(strings.ToLower(name)))
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) < 4 {
		return game.DefaultColorOrder
	}
	return out
}
