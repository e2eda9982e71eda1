//go:build mage
// +build mage

package main

import (
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/openimsdk/procprio/mageutil"
	"github.com/openimsdk/procprio/priority"
)

var Default = Show

// Show prints the priority of the mage process.
func Show() error {
	return mageutil.ShowPriority()
}

// Apply sets the priority configured in priority.yml or PROCPRIO_LEVEL and
// reports it.
func Apply() error {
	if _, err := mageutil.ApplyConfiguredPriority(nil); err != nil {
		return err
	}
	return mageutil.ShowPriority()
}

// Run executes a command at the given level.
//
// Example: `mage run idle "go build ./..."`
func Run(level, command string) error {
	l, err := priority.ParseLevel(level)
	if err != nil {
		return err
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return mg.Fatal(2, "empty command")
	}
	return mageutil.RunWithPriority(l, nil, fields[0], fields[1:]...)
}

// Test runs the test suite at the configured priority.
func Test() error {
	mg.Deps(Vet)
	return mageutil.RunConfigured(nil, "go", "test", "./...")
}

func Vet() error {
	return sh.RunV("go", "vet", "./...")
}
