// Package docs holds the documentation topics of dsk, one markdown file per
// topic. readme.md lists them.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// readme is the topic introducing the others.
const readme = "readme"

// GetTopic returns the markdown of a topic, or of all topics for "*".
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(all...)
	}
	content, err := files.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q, see 'dsk topic' for the list", topic)
	}
	return string(content), nil
}

// GetTopics concatenates topics, in order.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the topic names but the readme, sorted.
func GetAllTopics() ([]string, error) {
	names, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(names))
	for _, name := range names {
		if topic := strings.TrimSuffix(name, ".md"); topic != readme {
			topics = append(topics, topic)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
