// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mvpxiv CLI: a browser and
// server for daily batches of startup ideas generated from research
// papers. The generation pipeline lives elsewhere; this binary only
// reads, validates, and serves the content.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MoayyadShahid/MVPXiv/internal/repository"
	"github.com/MoayyadShahid/MVPXiv/internal/secrets"
	"github.com/MoayyadShahid/MVPXiv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the mvpxiv CLI.
var rootCmd = &cobra.Command{
	Use:   "mvpxiv",
	Short: "Browse and serve daily startup-idea batches built from arXiv papers",
	Long: `mvpxiv reads daily batches of startup ideas derived from research papers
and exposes them through a CLI and a JSON API. Content comes from either
an embedded fixture dataset or a SQLite database written by the upstream
generation run; every record is validated against the strict content
schema before it is shown.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mvpxiv.yaml or ~/.config/mvpxiv/config.yaml)")
	rootCmd.PersistentFlags().Bool("fixture", false, "use the embedded fixture dataset instead of the database")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (default: data/content.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mvpxiv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mvpxiv"))
		}
	}

	viper.SetEnvPrefix("MVPXIV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// repositoryConfig resolves the backend selection once, from flags,
// config file, and secrets, in that order. Every subcommand goes
// through here so the whole process sees one backend.
func repositoryConfig(cmd *cobra.Command) types.RepositoryConfig {
	useFixture, _ := cmd.Flags().GetBool("fixture")
	if !cmd.Flags().Changed("fixture") {
		useFixture = viper.GetBool("use_fixture")
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("database_path")
	}
	if dbPath == "" {
		dbPath = secretDefault("database-url", "")
	}
	if dbPath == "" {
		dbPath = filepath.Join("data", "content.db")
	}

	return types.RepositoryConfig{
		UseFixture:   useFixture,
		DatabasePath: dbPath,
	}
}

// openRepository builds the configured repository for a subcommand.
func openRepository(cmd *cobra.Command) (repository.Repository, error) {
	return repository.New(repositoryConfig(cmd))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
