package textindex

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/guiguan/caster"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// textFile represents an OS file which will be indexed word by word.
type textFile struct {
	path      string      // file name
	info      os.FileInfo // result from Stat(path)
	file      *os.File    // file handle
	lastError error       // remember last I/O error
}

// Progress is the message type broadcast to subscribers while a file is
// being loaded.
type Progress struct {
	Path  string // file being loaded
	Bytes int64  // bytes consumed so far
	Words int    // distinct words in the index so far
}

// Load reads a file, which must be a text file, and indexes its words.
// Clients may indicate a recommended fragment length; 0 lets Load use
// sensible defaults depending on file size.
//
// Loading happens asynchronously: Load returns immediately after opening the
// file, with fragment reading and word insertion running in the background.
// Clients must not query the index before the wait group signals completion;
// progress messages (see Subscribe) are the only safe window into a load in
// flight.
func Load(name string, fragSize int64, wg *sync.WaitGroup) (*Index, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	if fragSize <= 0 || fragSize > tenKb {
		if tf.info.Size() < 1024 {
			fragSize = 64
		} else if tf.info.Size() < tenKb {
			fragSize = 256
		} else if tf.info.Size() < hundredKb {
			fragSize = 512
		} else if tf.info.Size() < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	ix := New()
	ix.cast = caster.New(nil)
	ix.src = tf
	if wg != nil {
		wg.Add(1)
	}
	go loadAllFragments(ix, tf, fragSize, wg)
	return ix, nil
}

// Subscribe attaches a listener to a load in flight. Every loaded fragment
// is announced with a Progress message. The channel is closed when loading
// completes. ok is false if the index has no loader attached.
func (ix *Index) Subscribe(ctx context.Context) (ch <-chan interface{}, ok bool) {
	if ix.cast == nil {
		return nil, false
	}
	return ix.cast.Sub(ctx, 1)
}

// LastError returns the last I/O error encountered by a load, if any.
// Only meaningful after the load's wait group has signalled completion.
func (ix *Index) LastError() error {
	if ix.src == nil {
		return nil
	}
	return ix.src.lastError
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
	}
	return tf, nil
}

// loadAllFragments is the file loading goroutine. It reads the file one
// fragment at a time, carrying word fractions at fragment boundaries over to
// the next fragment, and publishes a Progress message per fragment.
func loadAllFragments(ix *Index, tf *textFile, fragSize int64, wg *sync.WaitGroup) {
	defer func() {
		tf.file.Close()
		ix.cast.Close()
		if wg != nil {
			wg.Done()
		}
	}()
	size := tf.info.Size()
	var pos int64
	carry := "" // word fraction cut off at the previous fragment boundary
	for pos < size {
		n := min(fragSize, size-pos)
		buf := make([]byte, n)
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			tf.lastError = fmt.Errorf("error loading text fragment: %w", err)
			tracer().Errorf("textindex: %v", tf.lastError)
			return
		}
		pos += int64(cnt)
		frag := carry + string(buf[:cnt])
		if pos < size {
			frag, carry = cutAtLastBoundary(frag)
		} else {
			carry = ""
		}
		if _, err := ix.Add(frag); err != nil {
			tf.lastError = err
			tracer().Errorf("textindex: cannot index fragment: %v", err)
			return
		}
		ix.cast.Pub(Progress{Path: tf.path, Bytes: pos, Words: ix.WordCount()})
	}
	tracer().Debugf("textindex: loaded %q, %d distinct words", tf.path, ix.WordCount())
}

// cutAtLastBoundary splits frag after its last whitespace rune, so that a
// word fraction at the fragment end survives to the next fragment. A
// fragment without any whitespace is carried over as a whole.
func cutAtLastBoundary(frag string) (head string, tail string) {
	idx := strings.LastIndexFunc(frag, unicode.IsSpace)
	if idx < 0 {
		return "", frag
	}
	_, w := utf8.DecodeRuneInString(frag[idx:])
	return frag[:idx+w], frag[idx+w:]
}
