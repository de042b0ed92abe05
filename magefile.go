//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "bilingual"
	mainPath   = "./cmd/bilingual"
	versionVar = "codeberg.org/snonux/bilingual/internal.Version"
)

// Default target to run when none is specified
var Default = Build

func ldflags() string {
	if v := os.Getenv("VERSION"); v != "" {
		return fmt.Sprintf("-X %s=%s", versionVar, v)
	}
	return ""
}

// Build builds the bilingual binary
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binaryName, mainPath)
}

// Install installs the binary into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPath)
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Convert runs the converter on a notebook tree, e.g. ROOT=~/course mage convert
func Convert() error {
	mg.Deps(Build)
	root := os.Getenv("ROOT")
	if root == "" {
		root = "."
	}
	return sh.RunV(filepath.Join(".", binaryName), "--root", root)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binaryName)
}
