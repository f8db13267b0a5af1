// Package configs bundles the seed data and the JSON schemas that validate it.
package configs

import (
	"embed"
	"io/fs"
)

//go:embed seed/*.json schemas/*.json
var files embed.FS

// Seed returns the bundled classes.json and items.json
func Seed() fs.FS {
	sub, err := fs.Sub(files, "seed")
	if err != nil {
		panic(err)
	}
	return sub
}

// Schemas returns the JSON schemas for the seed files
func Schemas() fs.FS {
	sub, err := fs.Sub(files, "schemas")
	if err != nil {
		panic(err)
	}
	return sub
}
