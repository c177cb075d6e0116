// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <job.yaml>",
	Short: "Generate articles for every URL and topic in a job file",
	Long: `Batch reads a YAML job file with "urls" and "topics" lists and runs the full
pipeline for each entry, URLs first. A failed entry is reported and the
batch continues. The command exits non-zero when any entry failed.`,
	Example: `  article-engine batch jobs/week-12.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE:    runBatch,
}

func init() {
	batchCmd.Flags().Bool("no-images", false, "skip image acquisition")
	batchCmd.Flags().Duration("delay", 0, "wait between entries (overrides item_delay)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	noImages, _ := cmd.Flags().GetBool("no-images")

	job, err := pipeline.LoadJob(args[0])
	if err != nil {
		return err
	}
	a, err := newApp()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delay") {
		a.cfg.ItemDelay, _ = cmd.Flags().GetDuration("delay")
	}
	runner, err := a.runner(!noImages)
	if err != nil {
		return err
	}

	result := runner.RunBatch(cmd.Context(), job, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d article(s) failed", result.Failed)
	}
	return nil
}
