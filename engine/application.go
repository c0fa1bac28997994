package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/renderer"
)

type WindowConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"y"`
	// Window starting width.
	StartWidth uint32 `toml:"width"`
	// Window starting height.
	StartHeight uint32 `toml:"height"`
}

type ClearColor struct {
	R float32 `toml:"r"`
	G float32 `toml:"g"`
	B float32 `toml:"b"`
	A float32 `toml:"a"`
}

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name       string               `toml:"name"`
	LogLevel   string               `toml:"log_level"`
	Window     WindowConfig         `toml:"window"`
	Stages     renderer.StageConfig `toml:"stages"`
	ClearColor ClearColor           `toml:"clear_color"`
}

// DefaultConfig is the Phong-lit rotating triangle.
func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:     "Prism Triangle",
		LogLevel: "info",
		Window: WindowConfig{
			StartPosX:   100,
			StartPosY:   100,
			StartWidth:  800,
			StartHeight: 600,
		},
		Stages: renderer.StageConfig{
			Lighting: true,
			Rotation: true,
		},
		ClearColor: ClearColor{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
}

// LoadConfig reads a variant TOML file over the defaults.
func LoadConfig(path string) (*ApplicationConfig, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func (c *ApplicationConfig) logLevel() core.LogLevel {
	switch c.LogLevel {
	case "debug":
		return core.DebugLevel
	case "warn":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	default:
		return core.InfoLevel
	}
}
