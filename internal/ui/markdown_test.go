package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("", 80); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderMarkdownPlainText(t *testing.T) {
	got := RenderMarkdown("just some words", 80)
	if !strings.Contains(got, "just some words") {
		t.Errorf("rendered output lost the text: %q", got)
	}
}

func TestRenderMarkdownHeading(t *testing.T) {
	got := RenderMarkdownWithStyle("# A heading\n\nbody text", 80, "dark")
	if !strings.Contains(got, "A heading") || !strings.Contains(got, "body text") {
		t.Errorf("rendered output lost content: %q", got)
	}
}
