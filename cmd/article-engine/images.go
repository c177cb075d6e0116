// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images <article-dir>",
	Short: "Acquire the images of an existing article",
	Long: `Images reads blog.json from an article folder and downloads one image per
slot: 0.png for the title image and 1.png..N.png for the sections. Failed
searches and downloads are retried, then a fallback result is tried. When
every slot succeeds, or failure_policy is skip, the markdown is rendered
again.`,
	Args: cobra.ExactArgs(1),
	RunE: runImages,
}

func init() {
	imagesCmd.Flags().Int("slot", -1, "acquire only this slot index")
	rootCmd.AddCommand(imagesCmd)
}

func runImages(cmd *cobra.Command, args []string) error {
	dir := args[0]
	slot, _ := cmd.Flags().GetInt("slot")

	a, err := newApp()
	if err != nil {
		return err
	}
	store := a.store()
	doc, err := store.ReadDocument(dir)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if slot >= 0 {
		queries := doc.ImageQueries()
		if slot >= len(queries) {
			return fmt.Errorf("slot %d out of range: article has %d image slots", slot, len(queries))
		}
		acq, err := a.acquirer()
		if err != nil {
			return err
		}
		asset, err := acq.AcquireSlot(cmd.Context(), slot, queries[slot], dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "image:     %s\n", asset.Path)
		return nil
	}

	runner, err := a.imageRunner()
	if err != nil {
		return err
	}
	res, err := runner.RunImages(cmd.Context(), dir)
	printResult(w, res)
	return err
}
