// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

var ideaCmd = &cobra.Command{
	Use:   "idea <id>",
	Short: "Show a single idea by its UUID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		idea, err := repo.IdeaByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatIdeaOutput(idea, jsonOutput)
	},
}

func formatIdeaOutput(idea *types.Idea, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(idea)
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", idea.StartupName, idea.Category)
	fmt.Fprintf(os.Stdout, "  ID:             %s\n", idea.ID)
	fmt.Fprintf(os.Stdout, "  Batch:          %s\n", idea.BatchDate)
	fmt.Fprintf(os.Stdout, "  Value prop:     %s\n", idea.ValueProposition)
	fmt.Fprintf(os.Stdout, "  Technical core: %s\n", idea.TechnicalCore)
	fmt.Fprintf(os.Stdout, "  Implementation: %s\n", idea.Implementation)
	fmt.Fprintf(os.Stdout, "  Why this paper: %s\n", idea.WhyThisPaper)
	fmt.Fprintf(os.Stdout, "  Tech stack:     %s\n", strings.Join(idea.TechStack, ", "))
	paper := idea.Paper.Title
	if idea.Paper.ArxivID != nil {
		paper = fmt.Sprintf("%s (%s)", paper, *idea.Paper.ArxivID)
	}
	fmt.Fprintf(os.Stdout, "  Paper:          %s\n", paper)
	for _, bullet := range idea.ResumeBullets {
		if bullet != "" {
			fmt.Fprintf(os.Stdout, "  - %s\n", bullet)
		}
	}
	return nil
}

func init() {
	ideaCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(ideaCmd)
}
