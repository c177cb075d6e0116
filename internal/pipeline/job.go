// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Job is a batch of article sources read from a YAML file:
//
//	urls:
//	  - https://example.com/post
//	topics:
//	  - coffee brewing
type Job struct {
	URLs   []string `yaml:"urls"`
	Topics []string `yaml:"topics"`
}

// ItemKind tells whether a batch item is a URL or a topic.
type ItemKind string

const (
	ItemURL   ItemKind = "url"
	ItemTopic ItemKind = "topic"
)

// Item is one source in a batch.
type Item struct {
	Kind  ItemKind
	Value string
}

// Items returns the job's sources in processing order: URLs first, then
// topics. Blank entries are dropped.
func (j Job) Items() []Item {
	items := make([]Item, 0, len(j.URLs)+len(j.Topics))
	for _, u := range j.URLs {
		if u = strings.TrimSpace(u); u != "" {
			items = append(items, Item{Kind: ItemURL, Value: u})
		}
	}
	for _, t := range j.Topics {
		if t = strings.TrimSpace(t); t != "" {
			items = append(items, Item{Kind: ItemTopic, Value: t})
		}
	}
	return items
}

// LoadJob reads a job file. Unknown keys are rejected.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("reading job file: %w", err)
	}
	var job Job
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil && !errors.Is(err, io.EOF) {
		return Job{}, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	if len(job.Items()) == 0 {
		return Job{}, fmt.Errorf("job file %s lists no urls or topics", path)
	}
	return job, nil
}
