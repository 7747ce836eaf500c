// Command zipkit packs files from disk into a stored ZIP archive.
//
// Usage:
//
//	zipkit [-o archive.zip] file...
//
// Each argument is read fully into memory and stored under its base name.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meigma/zipkit"
)

func main() {
	out := flag.String("o", "archive.zip", "output archive path")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: zipkit [-o archive.zip] file...")
		os.Exit(2)
	}

	if err := run(*out, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "zipkit:", err)
		os.Exit(1)
	}
}

func run(out string, paths []string) error {
	entries := make([]zipkit.Entry, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, zipkit.Entry{
			Name:    filepath.Base(path),
			Content: string(data),
		})
	}

	archive, err := zipkit.Build(context.Background(), entries)
	if err != nil {
		return err
	}
	return os.WriteFile(out, archive, 0o644)
}
