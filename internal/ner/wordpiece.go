package ner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Special tokens of BERT-style vocabularies.
const (
	tokenCLS = "[CLS]"
	tokenSEP = "[SEP]"
	tokenPAD = "[PAD]"
	tokenUNK = "[UNK]"

	maxWordRunes = 100
)

// WordPiece is a greedy longest-match-first subword tokenizer.
type WordPiece struct {
	vocab     map[string]int64
	lowercase bool
	cls, sep  int64
	pad, unk  int64
}

// Encoding is a token sequence with the index of the word each token came from.
type Encoding struct {
	IDs   []int64
	Words []int
}

// LoadVocab reads a vocab.txt file (one token per line, id = line number).
func LoadVocab(path string, lowercase bool) (*WordPiece, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocab: %w", err)
	}
	defer f.Close()
	return ReadVocab(f, lowercase)
}

// ReadVocab builds a tokenizer from vocabulary lines.
func ReadVocab(r io.Reader, lowercase bool) (*WordPiece, error) {
	vocab := make(map[string]int64)
	sc := bufio.NewScanner(r)
	var id int64
	for sc.Scan() {
		tok := strings.TrimRight(sc.Text(), "\r")
		if tok != "" {
			if _, dup := vocab[tok]; !dup {
				vocab[tok] = id
			}
		}
		id++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocab: %w", err)
	}
	wp := &WordPiece{vocab: vocab, lowercase: lowercase}
	for _, special := range []struct {
		name string
		dst  *int64
	}{{tokenCLS, &wp.cls}, {tokenSEP, &wp.sep}, {tokenPAD, &wp.pad}, {tokenUNK, &wp.unk}} {
		v, ok := vocab[special.name]
		if !ok {
			return nil, fmt.Errorf("vocab is missing %s", special.name)
		}
		*special.dst = v
	}
	return wp, nil
}

// SplitWords performs BERT basic tokenization: whitespace splitting with every
// punctuation character emitted as its own word.
func SplitWords(text string) []string {
	var (
		words []string
		b     strings.Builder
	)
	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r) || unicode.IsControl(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			words = append(words, string(r))
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return words
}

// Encode tokenizes pre-split words without special tokens.
func (w *WordPiece) Encode(words []string) Encoding {
	var enc Encoding
	for i, word := range words {
		for _, id := range w.encodeWord(word) {
			enc.IDs = append(enc.IDs, id)
			enc.Words = append(enc.Words, i)
		}
	}
	return enc
}

func (w *WordPiece) encodeWord(word string) []int64 {
	if w.lowercase {
		word = strings.ToLower(word)
	}
	runes := []rune(word)
	if len(runes) > maxWordRunes {
		return []int64{w.unk}
	}
	var ids []int64
	for start := 0; start < len(runes); {
		end := len(runes)
		found := int64(-1)
		for end > start {
			piece := string(runes[start:end])
			if start > 0 {
				piece = "##" + piece
			}
			if id, ok := w.vocab[piece]; ok {
				found = id
				break
			}
			end--
		}
		if found < 0 {
			return []int64{w.unk}
		}
		ids = append(ids, found)
		start = end
	}
	return ids
}

// Window is one model input: [CLS] tokens [SEP] padded to a fixed length.
type Window struct {
	InputIDs      []int64
	AttentionMask []int64
	TokenTypeIDs  []int64
	// Words maps each position to a word index, -1 for special and padding tokens.
	Words []int
}

// Windows splits an encoding into fixed-size model inputs. A word's subtokens never
// straddle two windows unless the word alone exceeds the window.
func (w *WordPiece) Windows(enc Encoding, maxTokens int) []Window {
	if maxTokens < 3 {
		maxTokens = 3
	}
	room := maxTokens - 2
	var out []Window
	for start := 0; start < len(enc.IDs); {
		end := start + room
		if end >= len(enc.IDs) {
			end = len(enc.IDs)
		} else {
			cut := end
			for cut > start && enc.Words[cut] == enc.Words[cut-1] {
				cut--
			}
			if cut > start {
				end = cut
			}
		}
		out = append(out, w.window(enc.IDs[start:end], enc.Words[start:end], maxTokens))
		start = end
	}
	return out
}

func (w *WordPiece) window(ids []int64, words []int, size int) Window {
	win := Window{
		InputIDs:      make([]int64, size),
		AttentionMask: make([]int64, size),
		TokenTypeIDs:  make([]int64, size),
		Words:         make([]int, size),
	}
	for i := range win.InputIDs {
		win.InputIDs[i] = w.pad
		win.Words[i] = -1
	}
	win.InputIDs[0], win.AttentionMask[0] = w.cls, 1
	for i, id := range ids {
		win.InputIDs[i+1] = id
		win.AttentionMask[i+1] = 1
		win.Words[i+1] = words[i]
	}
	win.InputIDs[len(ids)+1], win.AttentionMask[len(ids)+1] = w.sep, 1
	return win
}
