// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/article"
	"github.com/pdiddy/article-engine/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <article-dir>",
	Short: "Render an article's blog.json as Hugo markdown",
	Long: `Render reads blog.json from an article folder and writes <folder>.md with
Hugo front matter and image links under the configured image prefix. With
--html it also writes an HTML preview next to the markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("html", false, "also write an HTML preview")
	renderCmd.Flags().Bool("stdout", false, "print the markdown instead of writing it")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	dir := args[0]
	withHTML, _ := cmd.Flags().GetBool("html")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	a, err := newApp()
	if err != nil {
		return err
	}
	store := a.store()
	doc, err := store.ReadDocument(dir)
	if err != nil {
		return err
	}

	md := render.Render(doc, render.ImageBasePath(a.cfg.Output.ImagePrefix, filepath.Base(dir)))
	w := cmd.OutOrStdout()
	if toStdout {
		fmt.Fprint(w, md)
	} else {
		p, err := store.WriteMarkdown(dir, md)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "markdown:  %s\n", p)
	}

	if withHTML {
		html, err := render.HTML(md)
		if err != nil {
			return err
		}
		p := strings.TrimSuffix(article.MarkdownPath(dir), ".md") + ".html"
		if err := os.WriteFile(p, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing html preview: %w", err)
		}
		fmt.Fprintf(w, "html:      %s\n", p)
	}
	return nil
}
