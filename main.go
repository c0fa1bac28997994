/*
Prism renders a single shaded triangle through a configurable pipeline.
The optional stages (vertex color, texture, Phong lighting, rotation) are
selected by a TOML config file passed as the only argument; without one the
Phong variant runs.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/prism/engine"
	"github.com/spaghettifunk/prism/engine/core"
)

func main() {
	config := engine.DefaultConfig()
	if len(os.Args) > 1 {
		var err error
		config, err = engine.LoadConfig(os.Args[1])
		if err != nil {
			core.LogFatal("%v", err)
		}
	}

	e := engine.New(config)
	if err := e.Initialize(); err != nil {
		core.LogError("initialization failed: %v", err)
		os.Exit(1)
	}

	fmt.Println(config.Name)
	fmt.Println("Controls:")
	if config.Stages.Texture {
		fmt.Println("  R/G/B - tint texture, W - remove tint")
	} else {
		fmt.Println("  R/G/B/Y - object color")
	}
	fmt.Println("  ESC - exit")

	if err := e.Run(); err != nil {
		core.LogError("%v", err)
		os.Exit(1)
	}
}
