package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("fifo")
	if err != nil {
		t.Fatalf("GetTopic(fifo) error = %v", err)
	}
	if !strings.Contains(content, "first-in-first-out") {
		t.Errorf("fifo topic does not explain FIFO:\n%s", content)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) expected an error")
	}
}

func TestGetTopics_StarExpandsToAll(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("only %d topics embedded: %v", len(all), all)
	}

	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	for _, topic := range all {
		single, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%s) error = %v", topic, err)
		}
		if !strings.Contains(content, single) {
			t.Errorf("GetTopics(*) does not contain topic %q", topic)
		}
	}
}

// Every topic must be well-formed markdown opening with a single level-1
// heading, so that concatenated topics render as a sequence of chapters.
func TestTopicsStructure(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%s) error = %v", topic, err)
		}
		source := []byte(content)
		root := mdParser.Parse(text.NewReader(source))

		var h1 int
		err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering {
				if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
					h1++
				}
			}
			return ast.WalkContinue, nil
		})
		if err != nil {
			t.Fatalf("walking %s: %v", topic, err)
		}
		if h1 != 1 {
			t.Errorf("topic %s has %d level-1 headings, want exactly 1", topic, h1)
		}
		if heading, ok := root.FirstChild().(*ast.Heading); !ok || heading.Level != 1 {
			t.Errorf("topic %s does not start with its title heading", topic)
		}
	}
}
