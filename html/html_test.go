package html

import (
	"strings"
	"testing"
)

const fragment = `<div><h1>Sorted indexes</h1>
<p>A <em>btree</em> keeps keys sorted.</p>
<p>Text may span <b>several</b> elements.</p></div>`

func TestIndexFromHTML(t *testing.T) {
	ix, err := IndexFromHTML(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("IndexFromHTML failed: %v", err)
	}
	for _, word := range []string{"Sorted", "indexes", "btree", "keeps", "sorted", "elements"} {
		if !ix.Contains(word) {
			t.Errorf("expected index to contain %q", word)
		}
	}
	if ix.Contains("div") || ix.Contains("em") {
		t.Errorf("element names must not be indexed")
	}
	if err := ix.Tree().Check(); err != nil {
		t.Errorf("underlying tree fails invariant check: %v", err)
	}
}

func TestInnerIndexRejectsNil(t *testing.T) {
	if _, err := InnerIndex(nil); err == nil {
		t.Errorf("expected error for nil node")
	}
}

func TestIndexFromHTMLVocabularySorted(t *testing.T) {
	ix, err := IndexFromHTML(strings.NewReader("<p>pear apple quince fig</p>"))
	if err != nil {
		t.Fatalf("IndexFromHTML failed: %v", err)
	}
	var words []string
	for word := range ix.Words() {
		words = append(words, word)
	}
	if strings.Join(words, " ") != "apple fig pear quince" {
		t.Errorf("vocabulary = %v, want sorted order", words)
	}
}
