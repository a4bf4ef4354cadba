package display

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/btree"
)

func newTree(t *testing.T, degree int, keys ...int) *btree.Tree[int] {
	t.Helper()
	tree, err := btree.New[int](btree.Config{Degree: degree})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

func TestFprintEmptyTree(t *testing.T) {
	color.NoColor = true
	tree := newTree(t, 3)
	var sb strings.Builder
	if err := Fprint(&sb, tree, nil); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if !strings.Contains(sb.String(), "empty tree") {
		t.Errorf("unexpected output for empty tree: %q", sb.String())
	}
}

func TestFprintRendersLevels(t *testing.T) {
	color.NoColor = true
	tree := newTree(t, 2, 1, 2, 3, 4)
	var sb strings.Builder
	if err := Fprint(&sb, tree, nil); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 node lines, got %d:\n%s", len(lines), sb.String())
	}
	if !strings.Contains(lines[0], "▸ 2") {
		t.Errorf("root line should show inner node with separator 2: %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "    ▪ ") {
			t.Errorf("child line should be an indented leaf: %q", l)
		}
	}
}

func TestFprintRejectsNilArguments(t *testing.T) {
	if err := Fprint[int](nil, nil, nil); err == nil {
		t.Errorf("expected error for nil writer and tree")
	}
}

func TestFprintTruncatesLongLines(t *testing.T) {
	color.NoColor = true
	tree := newTree(t, 6, 100000, 200000, 300000, 400000, 500000, 600000, 700000)
	var sb strings.Builder
	if err := Fprint(&sb, tree, &Config{LineWidth: 20}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		if utf8.RuneCountInString(line) > 20 {
			t.Errorf("line exceeds configured width: %q", line)
		}
		if !utf8.ValidString(line) {
			t.Errorf("truncation produced invalid UTF-8: %q", line)
		}
	}
}

// Widths that land inside the multi-byte level markers must not cut a rune
// in half.
func TestTruncationKeepsRuneBoundaries(t *testing.T) {
	color.NoColor = true
	tree := newTree(t, 6, 1234567, 2345678, 3456789)
	for width := 1; width <= 8; width++ {
		var sb strings.Builder
		if err := Fprint(&sb, tree, &Config{LineWidth: width}); err != nil {
			t.Fatalf("Fprint failed for width %d: %v", width, err)
		}
		for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
			if !utf8.ValidString(line) {
				t.Errorf("width %d: invalid UTF-8 in %q", width, line)
			}
			if utf8.RuneCountInString(line) > width {
				t.Errorf("width %d: line too long: %q", width, line)
			}
		}
	}
}
