// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/MoayyadShahid/MVPXiv/internal/repository"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every batch and its ideas to YAML or JSON",
	Long: `Export dumps the full contents of the configured backend, newest batch
first, with the ideas resolved inline. Writes to stdout unless --out is
given. Useful for seeding the fixture dataset or diffing two backends.`,
	RunE: runExport,
}

// exportDoc is the top-level shape of an export file.
type exportDoc struct {
	Batches []repository.BatchWithIdeas `json:"batches" yaml:"batches"`
}

func runExport(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}
	defer repo.Close()

	batches, err := repo.Batches(cmd.Context())
	if err != nil {
		return err
	}

	doc := exportDoc{Batches: make([]repository.BatchWithIdeas, 0, len(batches))}
	for _, b := range batches {
		bwi, err := repo.BatchByDate(cmd.Context(), b.Date)
		if err != nil {
			return fmt.Errorf("resolving batch %s: %w", b.Date, err)
		}
		doc.Batches = append(doc.Batches, *bwi)
	}

	out := io.Writer(os.Stdout)
	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding export: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q: want yaml or json", format)
	}
}

func init() {
	exportCmd.Flags().String("format", "yaml", "output format: yaml or json")
	exportCmd.Flags().String("out", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
