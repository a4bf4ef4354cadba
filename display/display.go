package display

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/btree"
	"golang.org/x/term"
)

// Config controls the rendering of a tree.
type Config struct {
	// Palette colors node lines by depth, cycling when the tree is deeper
	// than the palette. A nil palette selects a default one.
	Palette []*color.Color
	// LineWidth truncates node lines which would overflow the output device.
	// 0 means no truncation.
	LineWidth int
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 0
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
}

// Print renders the node structure of a tree to stdout, one line per node,
// indented and colored by depth. Width and color handling are derived from
// the terminal.
func Print[K cmp.Ordered](tree *btree.Tree[K]) error {
	return Fprint(os.Stdout, tree, ConfigFromTerminal())
}

// Fprint renders the node structure of a tree to w.
//
// If config is nil, a default configuration without line truncation is used.
func Fprint[K cmp.Ordered](w io.Writer, tree *btree.Tree[K], config *Config) error {
	if w == nil || tree == nil {
		return btree.ErrIllegalArguments
	}
	if config == nil {
		config = &Config{}
	}
	palette := config.Palette
	if palette == nil {
		palette = makeDefaultPalette()
	}
	var err error
	if tree.IsEmpty() {
		_, err = io.WriteString(w, "· empty tree\n")
		return err
	}
	tree.Walk(func(info btree.NodeInfo[K]) bool {
		line := nodeLine(info, config.LineWidth)
		c := palette[info.Depth%len(palette)]
		if _, werr := c.Fprintln(w, line); werr != nil {
			err = werr
			return false
		}
		return true
	})
	return err
}

func nodeLine[K cmp.Ordered](info btree.NodeInfo[K], width int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("    ", info.Depth))
	if info.Leaf {
		sb.WriteString("▪ ")
	} else {
		sb.WriteString("▸ ")
	}
	for i, key := range info.Keys {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%v", key)
	}
	line := sb.String()
	if width > 0 && utf8.RuneCountInString(line) > width {
		// Truncate on rune boundaries; the level markers are multi-byte.
		runes := []rune(line)
		line = string(runes[:width-1]) + "…"
	}
	return line
}
