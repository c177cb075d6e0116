// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"text/template"
)

// Mode selects the upstream text source of a generation request.
type Mode int

const (
	// ModeTopic generates from a raw topic string.
	ModeTopic Mode = iota
	// ModeSummary generates from notes produced by the summarizer.
	ModeSummary
)

func (m Mode) String() string {
	if m == ModeSummary {
		return "summary"
	}
	return "topic"
}

// DateLayout formats the generation date embedded in prompts.
const DateLayout = "January 02, 2006"

const systemPrompt = "You write SEO blog posts and answer with a single JSON object and nothing else."

var topicPromptTmpl = template.Must(template.New("topic").Parse(`- you are an SEO specialist and you need to write a blog post on the following topic: {{.Source}}
- draw on your own knowledge and include relevant data
- apply SEO practice so the post ranks well in search engines
- the blog post must follow this syntax: {{.Syntax}}
- follow the format strictly; markdown is allowed inside the content fields to improve presentation
- the content under each heading must be detailed, long and SEO optimized
- respond with the JSON object only, no code fences and no text outside it
- today's date is {{.Date}}`))

var summaryPromptTmpl = template.Must(template.New("summary").Parse(`- you are an SEO specialist and you need to write a blog post from the following notes: {{.Source}}
- you may add details from your own knowledge
- apply SEO practice so the post ranks well in search engines
- the blog post must follow this syntax: {{.Syntax}}
- follow the format strictly; markdown is allowed inside the content fields to improve presentation
- the content under each heading must be detailed, long and SEO optimized
- respond with the JSON object only, no code fences and no text outside it
- today's date is {{.Date}}`))

type promptData struct {
	Source string
	Syntax string
	Date   string
}

// renderPrompt executes the template for mode.
func renderPrompt(mode Mode, data promptData) (string, error) {
	tmpl := topicPromptTmpl
	if mode == ModeSummary {
		tmpl = summaryPromptTmpl
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
