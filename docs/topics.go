// Package docs holds the embedded user documentation of vcs, one markdown
// topic per file.
//
// readme.md is the index: it lists every other topic on a line of the form
// "* name: description".
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Readme is the name of the index topic.
const Readme = "readme"

// ErrUnknownTopic is returned for a topic that is not embedded.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is an entry of the readme index.
type Topic struct {
	Name        string
	Description string
}

// normalize accepts "Chart", " chart " and "chart.md" for "chart".
func normalize(topic string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(topic)), ".md")
}

// GetTopic returns the content of a documentation topic, "*" for all of them.
//
// An unknown topic returns an error wrapping ErrUnknownTopic that lists the
// closest available topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(topic)
	}
	name := normalize(topic)
	all, err := GetAllTopics()
	if err != nil {
		return "", err
	}
	if name != Readme && !slices.Contains(all, name) {
		return "", fmt.Errorf("%w %q, try one of: %s", ErrUnknownTopic, topic, strings.Join(suggest(name, all), ", "))
	}
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("cannot read topic %q: %w", name, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated
// together. "*" expands to every topic. A topic is printed once, at its first
// occurrence.
func GetTopics(topics ...string) (string, error) {
	var names []string
	for _, topic := range topics {
		if topic != "*" {
			names = append(names, normalize(topic))
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		names = append(names, all...)
	}

	var b bytes.Buffer
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of every topic but the readme.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != Readme {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

// Index returns the topics listed in the readme, in readme order.
func Index() ([]Topic, error) {
	content, err := docs.ReadFile(Readme + ".md")
	if err != nil {
		return nil, err
	}
	var index []Topic
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line, ok := strings.CutPrefix(scanner.Text(), "* ")
		if !ok {
			continue
		}
		name, desc, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		index = append(index, Topic{Name: strings.TrimSpace(name), Description: strings.TrimSpace(desc)})
	}
	return index, scanner.Err()
}

// suggest returns the topics sharing a prefix with name, or all of them.
func suggest(name string, all []string) []string {
	var out []string
	for _, t := range all {
		if name != "" && (strings.HasPrefix(t, name) || strings.HasPrefix(name, t)) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}
