//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/unitbl"
	binPath    = "./bin/unitbl"
)

// Default target - build the binary
var Default = Build

// Build builds the unitbl binary with version information
func Build() error {
	header("Build")
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/unitbl"); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Printf("Built: %s\n", binPath)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	header("Clean")
	return os.RemoveAll("./bin")
}

// Demo builds the binary and runs every demonstration table
func Demo() error {
	mg.Deps(Build)
	header("Demo")
	return sh.RunV(binPath, "demo", "all", "--style", "single-v2")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() error {
	mg.SerialDeps(Lint.Format, Lint.Vet, Lint.Golangci)
	return nil
}

// Format checks code formatting
func (Lint) Format() error {
	header("gofmt")
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out = strings.TrimSpace(out); out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	header("go vet")
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint when it is installed
func (Lint) Golangci() error {
	header("golangci-lint")
	err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
	if err != nil && sh.ExitStatus(err) == 127 {
		fmt.Println("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return err
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	header("Test")
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with the race detector
func (Test) Race() error {
	header("Test (race)")
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	header("Test (coverage)")
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

func header(title string) {
	fmt.Printf("\n== %s ==\n", title)
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
