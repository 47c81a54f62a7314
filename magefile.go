//go:build mage
// +build mage

package main

import (
	"os"

	"github.com/magefile/mage/sh"
	"github.com/mattn/go-shellwords"
	"github.com/mattn/go-zglob"
)

func init() {
	os.Setenv("GO111MODULE", "on")
}

func runVWithArgs(cmd string, args ...string) error {
	envArgs, err := shellwords.Parse(os.Getenv("ARGS"))
	if err != nil {
		return err
	}
	return sh.RunV(cmd, append(args, envArgs...)...)
}

// Format code
func Fmt() error {
	files, err := zglob.Glob("./**/*.go")
	if err != nil {
		return err
	}
	for _, file := range files {
		if ok, err := zglob.Match("./vendor/**", file); ok || err != nil {
			continue
		}
		if err := sh.RunV("goimports", "-w", file); err != nil {
			return err
		}
	}
	return nil
}

// Check coding style
func Lint() error {
	return sh.RunV("golangci-lint", "run")
}

// Run test
func Test() error {
	return runVWithArgs("go", "test", "./...")
}

// Start a quiz, e.g. ARGS="--mode chords --rounds 10"
func Quiz() error {
	return runVWithArgs("go", "run", ".", "quiz")
}

// Start the HTTP API
func Serve() error {
	return runVWithArgs("go", "run", ".", "serve")
}

// Build binary
func Build() error {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return sh.RunV("go", "build", "-ldflags", "-X main.version="+version, ".")
}
