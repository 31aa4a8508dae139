package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/etnz/rentvest"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// scenarioBlock is the info string of fenced blocks holding a scenario.
const scenarioBlock = "json scenario"

func TestTopics(t *testing.T) {
	// This test ensures that the documentation index is in sync with the files.
	// It checks two things:
	// 1. Every topic listed in docs/readme.md can be loaded.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is listed in docs/readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if topic == listed {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}

	desc, err := Descriptions()
	if err != nil {
		t.Fatal(err)
	}
	if len(desc) != len(topicsInReadme) {
		t.Errorf("Descriptions() has %d topics, want %d", len(desc), len(topicsInReadme))
	}
}

func TestGetTopic(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(\"nope\") should fail")
	}
	index, err := GetTopic("")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(index, "# rvs documentation") {
		t.Errorf("GetTopic(\"\") = %q..., want the index", index[:min(len(index), 30)])
	}
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(all, "# Offset account") || !strings.Contains(all, "# Strategies") {
		t.Error("GetTopic(\"*\") should concatenate every topic")
	}
}

func TestScenarioBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for _, file := range files {
		for _, block := range parseMarkdown(t, file) {
			n++
			t.Run(file+":"+block.Line(), func(t *testing.T) {
				s, err := rentvest.DecodeScenario(strings.NewReader(block.Content))
				if err != nil {
					t.Fatalf("%s:%s: %v", file, block.Line(), err)
				}
				if _, err := s.Portfolio(); err != nil {
					t.Errorf("%s:%s: %v", file, block.Line(), err)
				}
			})
		}
	}
	if n == 0 {
		t.Error("no scenario block found in the documentation")
	}
}

// HELPER

// Block represents a fenced code block in the markdown file.
type Block struct {
	Content string
	line    int
}

func (b *Block) Line() string { return strconv.Itoa(b.line) }

// parseMarkdown parses a markdown file and returns its scenario blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Info.Segment.Value(content)) != scenarioBlock {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Content: b.String(),
			line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an AST offset.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
