package html

import (
	"io"

	"github.com/npillmayer/btree"
	"github.com/npillmayer/btree/textindex"
	"golang.org/x/net/html"
)

// InnerIndex creates a word index for the textual content of an HTML element
// and all its descendents. The indexed text resembles the one produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerIndex cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerIndex(n *html.Node) (*textindex.Index, error) {
	if n == nil {
		return nil, btree.ErrIllegalArguments
	}
	ix := textindex.New()
	if err := collectText(n, ix); err != nil {
		return nil, err
	}
	return ix, nil
}

func collectText(n *html.Node, ix *textindex.Index) error {
	if n.Type == html.TextNode {
		if _, err := ix.Add(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, ix); err != nil {
			return err
		}
	}
	return nil
}

// IndexFromHTML creates a word index from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but indexes the
// pure text.
func IndexFromHTML(input io.Reader) (*textindex.Index, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	ix := textindex.New()
	for _, n := range nodes {
		if err := collectText(n, ix); err != nil {
			return nil, err
		}
	}
	return ix, nil
}
