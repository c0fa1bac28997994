//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the Phong demo variant.
func (Run) Phong() error {
	return runVariant("configs/phong.toml")
}

// Runs the textured demo variant.
func (Run) Textured() error {
	return runVariant("configs/textured.toml")
}

// Runs the vertex-color demo variant.
func (Run) Color() error {
	return runVariant("configs/color.toml")
}

// Runs the bare demo variant.
func (Run) Simple() error {
	return runVariant("configs/simple.toml")
}

func runVariant(config string) error {
	fmt.Printf("Run renderer with %s...\n", config)
	if _, err := executeCmd("go", withArgs("run", "main.go", config), withStream()); err != nil {
		return err
	}
	return nil
}
