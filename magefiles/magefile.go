//go:build mage

// Package main provides build targets for the estatebook project using Mage.
//
// Usage:
//
//	mage build          Compile estatebook binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests for one package (PKG=./internal/book)
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts
//	mage install        Install estatebook to GOPATH/bin
//	mage demo           Run a few commands against a scratch data directory
//	mage stats          Print Go LOC per package
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "estatebook"
	binaryDir  = "bin"
	cmdDir     = "./cmd/estatebook"
)

// Build compiles the estatebook binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := sh.Rm(coverFile); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Demo builds the binary and runs a short session against a scratch
// configuration and data directory. Set BACKEND=sqlite to try the
// SQLite store.
func Demo() error {
	mg.Deps(Build)
	scratch, err := os.MkdirTemp("", "estatebook-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	bin := filepath.Join(binaryDir, binaryName)
	dirs := []string{
		"--config-dir", filepath.Join(scratch, "config"),
		"--data-dir", filepath.Join(scratch, "data"),
	}
	backend := os.Getenv("BACKEND")
	if backend == "" {
		backend = "json"
	}

	steps := [][]string{
		{"init", "--backend", backend},
		{"exec", "addprop", "n/Sunset Villa", "p/1500000", "a/12 Palm Drive", "d/Sea views", "s/John Doe"},
		{"exec", "addbuyer", "n/Jane Doe", "p/91234567", "e/jane@example.com"},
		{"exec", "findprop", "villa"},
		{"exec", "listbuyer"},
	}
	for _, step := range steps {
		fmt.Println("$ estatebook", step)
		if err := sh.RunV(bin, append(dirs, step...)...); err != nil {
			return err
		}
	}
	return nil
}
