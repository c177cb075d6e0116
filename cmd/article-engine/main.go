// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the article-engine CLI.
// Each pipeline stage is a subcommand: summarize, generate, images, render,
// and batch for running many sources in one go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/article-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets *secrets.Set

var rootCmd = &cobra.Command{
	Use:   "article-engine",
	Short: "Generate SEO blog articles with images and Hugo markdown",
	Long: `article-engine turns a topic or a web page into a blog article. A language
model writes the article as structured JSON, an image search fills one picture
per section, and the result is rendered as Hugo markdown with front matter.

Every article lives in its own folder under the output directory:
blog.json, 0.png..N.png and <folder>.md.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if keys := s.Keys(); len(keys) > 0 {
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./article-engine.yaml or ~/.config/article-engine/config.yaml)")
	flags.String("secrets-dir", ".secrets/", "directory holding API key files")
	flags.String("provider", "", "text generation provider: openai, deepseek, anthropic")
	flags.String("model", "", "model name")
	flags.String("output-dir", "", "base directory for article folders")
	flags.String("image-backend", "", "image search backend: duckduckgo, searxng")
	flags.String("license", "", "image license filter, e.g. ShareCommercially")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "log format: console, json, pretty")

	for key, flag := range map[string]string{
		"ai.provider":    "provider",
		"ai.model":       "model",
		"output.dir":     "output-dir",
		"images.backend": "image-backend",
		"images.license": "license",
		"log.level":      "log-level",
		"log.format":     "log-format",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("article-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "article-engine"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("ARTICLE_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
