package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/macropower/propedit/pkg/request"
)

func main() {
	basePath := "docs"
	if err := generate(basePath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func generate(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	b, err := request.Schema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	out := filepath.Join(path, "request.schema.json")

	err = os.WriteFile(out, append(b, '\n'), 0o600)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", out, err)
	}

	return nil
}
