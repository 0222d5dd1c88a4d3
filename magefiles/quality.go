//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Quality namespace methods
// Note: Quality type is defined in main.go

// All runs every quality check
func (Quality) All() {
	mg.SerialDeps(Quality.Format, Quality.Vet, Quality.Lint)
}

// Lint runs golangci-lint
func (Quality) Lint() error {
	fmt.Println("Running linter...")
	return sh.Run("golangci-lint", "run", "./...")
}

// Format formats the code with gofumpt
func (Quality) Format() error {
	fmt.Println("Formatting code with gofumpt...")
	return sh.Run("gofumpt", "-l", "-w", ".")
}

// Vet runs go vet
func (Quality) Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}
