package textindex

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/btree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Index is a sorted vocabulary over the words of added texts.
//
// Words are held uniquely: adding a text twice does not grow the index.
// An Index is not safe for concurrent use; see Load for the asynchronous
// loading contract.
type Index struct {
	tree   *btree.Tree[string]
	cast   *caster.Caster // broadcaster for async file loading
	src    *textFile      // file being loaded, if any
	tokens int            // running count of word tokens seen, duplicates included
}

// New creates an empty word index.
func New() *Index {
	tree, err := btree.New[string](btree.Config{Unique: true})
	if err != nil {
		panic(err) // cannot happen for a default config
	}
	return &Index{tree: tree}
}

// Add segments text into words and inserts each into the index.
// It returns the number of word tokens seen, duplicates included.
func (ix *Index) Add(text string) (int, error) {
	return ix.AddFrom(strings.NewReader(text))
}

// AddFrom reads r to exhaustion, segmenting the input into words and
// inserting each into the index. It returns the number of word tokens seen.
func (ix *Index) AddFrom(r io.Reader) (int, error) {
	if r == nil {
		return 0, btree.ErrIllegalArguments
	}
	words := uax29.NewWordBreaker(1)
	segmenter := segment.NewSegmenter(words)
	segmenter.Init(bufio.NewReader(r))
	cnt := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		if !isWord(frag) {
			continue // skip whitespace and punctuation runs
		}
		ix.tree.Insert(frag)
		cnt++
	}
	if err := segmenter.Err(); err != nil {
		return cnt, err
	}
	ix.tokens += cnt
	return cnt, nil
}

// isWord reports whether a segment carries at least one letter or digit.
func isWord(frag string) bool {
	for _, r := range frag {
		if r == utf8.RuneError {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Contains reports whether word has been added to the index.
func (ix *Index) Contains(word string) bool {
	return ix.tree.Search(word)
}

// Words iterates the vocabulary in ascending lexicographic order.
func (ix *Index) Words() iter.Seq[string] {
	return ix.tree.Keys()
}

// WordCount returns the number of distinct words in the index.
func (ix *Index) WordCount() int {
	return ix.tree.Len()
}

// TokenCount returns the total number of word tokens seen so far,
// duplicates included.
func (ix *Index) TokenCount() int {
	return ix.tokens
}

// Tree exposes the underlying B-tree, e.g. for structure display.
// Clients must not mutate it while a Load is in flight.
func (ix *Index) Tree() *btree.Tree[string] {
	return ix.tree
}
