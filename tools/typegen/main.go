// Command typegen generates TypeScript definitions for the configuration
// schema and API response types, for use by frontend tooling.
//
// Usage: go run ./tools/typegen [output.ts]
package main

import (
	"fmt"
	"os"

	"github.com/coder/guts"
	"github.com/coder/guts/config"

	"github.com/MasonSBrown/NeXtSRGAN/internal/log"
)

func main() {
	golang, err := guts.NewGolangParser()
	if err != nil {
		log.Fatalf("Failed to create Go parser: %v", err)
	}

	for _, pkg := range []string{
		"github.com/MasonSBrown/NeXtSRGAN/internal/config",
		"github.com/MasonSBrown/NeXtSRGAN/internal/api",
	} {
		if err := golang.IncludeGenerate(pkg); err != nil {
			log.Fatalf("Failed to include package %s: %v", pkg, err)
		}
	}

	ts, err := golang.ToTypescript()
	if err != nil {
		log.Fatalf("Failed to convert types: %v", err)
	}

	ts.ApplyMutations(
		config.ExportTypes,
		config.ReadOnly,
	)

	output, err := ts.Serialize()
	if err != nil {
		log.Fatalf("Failed to serialize TypeScript: %v", err)
	}

	if len(os.Args) > 1 {
		if err := os.WriteFile(os.Args[1], []byte(output), 0644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
		return
	}

	fmt.Println(output)
}
