// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MoayyadShahid/MVPXiv/internal/repository"
	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

var batchesCmd = &cobra.Command{
	Use:   "batches [date]",
	Short: "List batches or show one batch with its ideas",
	Long: `Without arguments, batches lists every batch newest first. With a
YYYY-MM-DD argument it shows that batch and its ideas.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatches,
}

func runBatches(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}
	defer repo.Close()

	latest, _ := cmd.Flags().GetBool("latest")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if latest || len(args) == 1 {
		var bwi *repository.BatchWithIdeas
		if latest {
			bwi, err = repo.LatestBatch(cmd.Context())
			if err == nil && bwi == nil {
				return fmt.Errorf("no batches found")
			}
		} else {
			bwi, err = repo.BatchByDate(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}
		return formatBatchOutput(bwi, jsonOutput)
	}

	batches, err := repo.Batches(cmd.Context())
	if err != nil {
		return err
	}
	return formatBatchListOutput(batches, jsonOutput)
}

func formatBatchListOutput(batches []types.Batch, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(batches)
	}

	if len(batches) == 0 {
		fmt.Println("No batches found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-5s  %-7s  %-7s  %-9s  %-9s  %s\n",
		"Date", "Ideas", "Backlog", "Consid.", "Promising", "Lucrative", "Themes")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, b := range batches {
		fmt.Fprintf(os.Stdout, "%-12s  %-5d  %-7d  %-7d  %-9d  %-9d  %s\n",
			b.Date, len(b.IdeaIDs),
			b.CountsByCategory.Backlog, b.CountsByCategory.Considerable,
			b.CountsByCategory.Promising, b.CountsByCategory.Lucrative,
			strings.Join(b.ResearchThemes, ", "))
	}
	return nil
}

func formatBatchOutput(bwi *repository.BatchWithIdeas, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bwi)
	}

	b := bwi.Batch
	fmt.Fprintf(os.Stdout, "Batch %s\n", b.Date)
	fmt.Fprintf(os.Stdout, "  Sources: %s\n", strings.Join(displaySources(b.Sources), ", "))
	fmt.Fprintf(os.Stdout, "  Themes:  %s\n", strings.Join(b.ResearchThemes, ", "))
	fmt.Fprintf(os.Stdout, "  Counts:  backlog=%d considerable=%d promising=%d lucrative=%d\n",
		b.CountsByCategory.Backlog, b.CountsByCategory.Considerable,
		b.CountsByCategory.Promising, b.CountsByCategory.Lucrative)
	fmt.Fprintf(os.Stdout, "  Ideas:   %d listed, %d resolved\n\n", len(b.IdeaIDs), len(bwi.Ideas))

	for _, idea := range bwi.Ideas {
		fmt.Fprintf(os.Stdout, "  [%-12s] %-20s %s\n", idea.Category, idea.StartupName, idea.ID)
	}
	return nil
}

// displaySources keeps category-style source labels (cs.LG) and drops
// raw URLs, which are too long for table output. Everything gets shown
// verbatim in --json mode.
func displaySources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return sources
	}
	return out
}

func init() {
	batchesCmd.Flags().Bool("latest", false, "show the most recent batch")
	batchesCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(batchesCmd)
}
