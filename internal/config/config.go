package config

import (
	"os"
	"strconv"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// Weights tune the computer player. Every legal move is scored from its preview.
type Weights struct {
	WJoin     int `json:",default=40"`
	WFrontier int `json:",default=10"`
	WDeny     int `json:",default=15"`
	WSpread   int `json:",default=60"`
	WGolden   int `json:",default=50"`
}

// Game holds the parameters used for rooms and simulations when the caller
// does not pick its own.
type Game struct {
	Width   int `json:",default=10"`
	Height  int `json:",default=10"`
	Players int `json:",default=2"`
	Areas   int `json:",default=3"`
}

type Config struct {
	HTTPAddr    string `json:",default=:8080"`
	RoomCodeLen int    `json:",default=6"`
	Pprof       bool   `json:",optional"`

	// MaxSide and MaxPlayers cap what a client may ask for when creating a room.
	MaxSide    int `json:",default=1000"`
	MaxPlayers int `json:",default=64"`

	Game    Game
	Weights Weights
	Log     logx.LogConf
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTPAddr:    ":8080",
		RoomCodeLen: 6,
		MaxSide:     1000,
		MaxPlayers:  64,
		Game: Game{
			Width:   10,
			Height:  10,
			Players: 2,
			Areas:   3,
		},
		Weights: Weights{
			WJoin:     40,
			WFrontier: 10,
			WDeny:     15,
			WSpread:   60,
			WGolden:   50,
		},
		Log: logx.LogConf{
			ServiceName: "gamma",
			Mode:        "console",
			Encoding:    "plain",
			Level:       "info",
		},
	}
}

// Load returns the defaults overridden by GAMMA_* environment variables.
func Load() Config {
	return applyEnv(Default())
}

// LoadFile reads a yaml or json config file and applies the environment on top.
func LoadFile(path string) (Config, error) {
	var c Config
	if err := conf.Load(path, &c); err != nil {
		return Config{}, err
	}
	if c.Log.ServiceName == "" {
		c.Log.ServiceName = "gamma"
	}
	return applyEnv(c), nil
}

func applyEnv(c Config) Config {
	c.HTTPAddr = getenvString("GAMMA_HTTP_ADDR", c.HTTPAddr)
	c.RoomCodeLen = getenvInt("GAMMA_ROOM_CODE_LEN", c.RoomCodeLen)
	c.Pprof = getenvBool("GAMMA_PPROF", c.Pprof)
	c.MaxSide = getenvInt("GAMMA_MAX_SIDE", c.MaxSide)
	c.MaxPlayers = getenvInt("GAMMA_MAX_PLAYERS", c.MaxPlayers)

	c.Game.Width = getenvInt("GAMMA_WIDTH", c.Game.Width)
	c.Game.Height = getenvInt("GAMMA_HEIGHT", c.Game.Height)
	c.Game.Players = getenvInt("GAMMA_PLAYERS", c.Game.Players)
	c.Game.Areas = getenvInt("GAMMA_AREAS", c.Game.Areas)

	c.Weights.WJoin = getenvInt("GAMMA_W_JOIN", c.Weights.WJoin)
	c.Weights.WFrontier = getenvInt("GAMMA_W_FRONTIER", c.Weights.WFrontier)
	c.Weights.WDeny = getenvInt("GAMMA_W_DENY", c.Weights.WDeny)
	c.Weights.WSpread = getenvInt("GAMMA_W_SPREAD", c.Weights.WSpread)
	c.Weights.WGolden = getenvInt("GAMMA_W_GOLDEN", c.Weights.WGolden)

	c.Log.Level = getenvString("GAMMA_LOG_LEVEL", c.Log.Level)
	c.Log.Mode = getenvString("GAMMA_LOG_MODE", c.Log.Mode)
	return c
}

// SetupLogging configures the process-wide logx logger.
func SetupLogging(c logx.LogConf) error {
	return logx.SetUp(c)
}
