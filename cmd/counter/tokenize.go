package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"go.lepak.sg/multiset/counter"
	"go.lepak.sg/multiset/slidingwindow"
)

const maxTokenSize = 1 << 20

// splitFor returns the scanner split function for a tokenizing mode.
func splitFor(mode string) (bufio.SplitFunc, error) {
	switch mode {
	case "words":
		return bufio.ScanWords, nil
	case "runes":
		return bufio.ScanRunes, nil
	case "lines":
		return bufio.ScanLines, nil
	}
	return nil, errors.Errorf("unknown mode %q", mode)
}

type tokenizer struct {
	split      bufio.SplitFunc
	skipSpace  bool
	ignoreCase bool
	window     int // only count the last window tokens, if positive
}

// count adds every token read from r to c, and returns how many there were.
func (tk tokenizer) count(r io.Reader, c *counter.Counter[string, int]) (int, error) {
	observe := func(tok string) { c.Insert(tok) }

	var w *slidingwindow.Window[string, int]
	if tk.window > 0 {
		w = slidingwindow.New[string, int](tk.window, 0, nil)
		observe = w.Observe
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxTokenSize)
	sc.Split(tk.split)

	n := 0
	for sc.Scan() {
		tok := sc.Text()
		if tk.skipSpace && strings.IndexFunc(tok, unicode.IsSpace) == 0 {
			continue
		}
		if tk.ignoreCase {
			tok = strings.ToLower(tok)
		}
		observe(tok)
		n++
	}

	if w != nil {
		c.Add(w.Counts())
	}

	return n, errors.Wrap(sc.Err(), "scan")
}

// countFile opens name and counts its tokens into c.
func (tk tokenizer) countFile(name string, c *counter.Counter[string, int]) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer f.Close()

	n, err := tk.count(f, c)
	return n, errors.WithMessage(err, name)
}
