package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitMessageShortTextUnchanged(t *testing.T) {
	parts := SplitMessage("hello", 100)
	if len(parts) != 1 || parts[0] != "hello" {
		t.Errorf("parts = %v", parts)
	}
}

func TestSplitMessageRespectsMaxLen(t *testing.T) {
	text := strings.Repeat("x", 250)
	parts := SplitMessage(text, 100)

	var total int
	for _, p := range parts {
		if utf8.RuneCountInString(p) > 100 {
			t.Errorf("part of length %d exceeds max", utf8.RuneCountInString(p))
		}
		total += utf8.RuneCountInString(p)
	}
	if total != 250 {
		t.Errorf("total length = %d, content lost", total)
	}
}

func TestSplitMessagePrefersNewlines(t *testing.T) {
	text := strings.Repeat("a", 80) + "\n" + strings.Repeat("b", 80)
	parts := SplitMessage(text, 100)
	if len(parts) != 2 {
		t.Fatalf("parts = %d", len(parts))
	}
	if !strings.HasSuffix(parts[0], "\n") {
		t.Error("first part does not end at the newline")
	}
}

func TestFixMarkdownClosesCodeBlock(t *testing.T) {
	got := FixMarkdown("```go\nfmt.Println(1)")
	if strings.Count(got, "```")%2 != 0 {
		t.Errorf("code block still unclosed: %q", got)
	}
}

func TestFixMarkdownClosesInlineCode(t *testing.T) {
	got := FixMarkdown("use `fmt.Println and move on")
	if strings.Count(got, "`")%2 != 0 {
		t.Errorf("inline code still unclosed: %q", got)
	}
}

func TestFixMarkdownLeavesBalancedTextAlone(t *testing.T) {
	text := "all `good` here\n```\ncode\n```"
	if got := FixMarkdown(text); got != text {
		t.Errorf("balanced text changed: %q", got)
	}
}
