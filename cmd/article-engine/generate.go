// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one article from a topic or a web page",
	Long: `Generate writes one article from --topic, or from a summary of the page at
--url. The article folder receives blog.json, the slot images, and the
rendered markdown. A response that is not a valid article is rejected and
nothing is written.`,
	Example: `  article-engine generate --topic "coffee brewing"
  article-engine generate --url https://example.com/post --no-images`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "topic to write about")
	generateCmd.Flags().String("url", "", "page to summarize and write about")
	generateCmd.Flags().Bool("no-images", false, "skip image acquisition")
	generateCmd.MarkFlagsMutuallyExclusive("topic", "url")
	generateCmd.MarkFlagsOneRequired("topic", "url")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	url, _ := cmd.Flags().GetString("url")
	noImages, _ := cmd.Flags().GetBool("no-images")

	a, err := newApp()
	if err != nil {
		return err
	}
	runner, err := a.runner(!noImages)
	if err != nil {
		return err
	}

	var res *pipeline.Result
	if url != "" {
		res, err = runner.RunURL(cmd.Context(), url)
	} else {
		res, err = runner.RunTopic(cmd.Context(), topic)
	}
	printResult(cmd.OutOrStdout(), res)
	return err
}

// printResult reports whatever a run produced, including partial output
// left behind by a failed image stage.
func printResult(w io.Writer, res *pipeline.Result) {
	if res == nil {
		return
	}
	fmt.Fprintf(w, "article:   %s -> %s\n", res.Document.Title, res.Dir)
	fmt.Fprintf(w, "images:    %d of %d\n", len(res.Assets), len(res.Document.ImageQueries()))
	if res.MarkdownPath != "" {
		fmt.Fprintf(w, "markdown:  %s\n", res.MarkdownPath)
	}
}
