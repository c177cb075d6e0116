//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

func cli() string {
	return filepath.Join(binDir, binName)
}

// Article builds the CLI and generates one article about topic.
func Article(topic string) error {
	mg.Deps(Init, Build)
	return sh.RunV(cli(), "generate", "--topic", topic)
}

// Batch builds the CLI and runs every entry of a job file.
func Batch(job string) error {
	mg.Deps(Init, Build)
	return sh.RunV(cli(), "batch", job)
}
