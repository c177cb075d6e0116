// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/llm"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>",
	Short: "Print a detailed, entity-preserving summary of a web page",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	gen, err := llm.New(a.cfg.AI)
	if err != nil {
		return err
	}
	summary, err := a.summarizer(gen).Summarize(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary)
	return nil
}
