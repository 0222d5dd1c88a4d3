//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Build namespace methods
// Note: Build type is defined in main.go

// Binary builds the main binary
func (Build) Binary() error {
	fmt.Println("Building pin-check...")
	return sh.Run("go", "build", "-o", "bin/pin-check", "./cmd/pin-check")
}

// Install installs the binary to $GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing pin-check...")
	return sh.Run("go", "install", "./cmd/pin-check")
}
