//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the renderer binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "prism", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
