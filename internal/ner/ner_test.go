package ner

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

const testVocab = "[PAD]\n[UNK]\n[CLS]\n[SEP]\njane\ndoe\nworks\nat\nacme\n##corp\ngo\n##lang\n.\n"

func newTestTokenizer(t *testing.T) *WordPiece {
	t.Helper()
	wp, err := ReadVocab(strings.NewReader(testVocab), true)
	if err != nil {
		t.Fatalf("ReadVocab: %v", err)
	}
	return wp
}

func TestReadVocab_missingSpecial(t *testing.T) {
	if _, err := ReadVocab(strings.NewReader("[PAD]\nhello\n"), true); err == nil {
		t.Fatal("expected error for vocab without [CLS]")
	}
}

func TestSplitWords(t *testing.T) {
	got := SplitWords("Jane Doe, works at AcmeCorp.\n")
	want := []string{"Jane", "Doe", ",", "works", "at", "AcmeCorp", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitWords = %v, want %v", got, want)
	}
	if SplitWords("  ") != nil {
		t.Error("blank text should yield no words")
	}
}

func TestWordPiece_Encode(t *testing.T) {
	wp := newTestTokenizer(t)
	enc := wp.Encode([]string{"Jane", "AcmeCorp", "golang", "zzz"})
	wantIDs := []int64{4, 8, 9, 10, 11, 1}
	wantWords := []int{0, 1, 1, 2, 2, 3}
	if !reflect.DeepEqual(enc.IDs, wantIDs) {
		t.Errorf("IDs = %v, want %v", enc.IDs, wantIDs)
	}
	if !reflect.DeepEqual(enc.Words, wantWords) {
		t.Errorf("Words = %v, want %v", enc.Words, wantWords)
	}
}

func TestWordPiece_Windows(t *testing.T) {
	wp := newTestTokenizer(t)
	enc := wp.Encode([]string{"jane", "acmecorp", "doe"})
	// room for 2 tokens per window: "acmecorp" must not be split.
	wins := wp.Windows(enc, 4)
	if len(wins) != 3 {
		t.Fatalf("got %d windows, want 3", len(wins))
	}
	first := wins[0]
	if first.InputIDs[0] != 2 || first.InputIDs[1] != 4 || first.InputIDs[2] != 3 || first.InputIDs[3] != 0 {
		t.Errorf("first window ids = %v", first.InputIDs)
	}
	if !reflect.DeepEqual(first.AttentionMask, []int64{1, 1, 1, 0}) {
		t.Errorf("first window mask = %v", first.AttentionMask)
	}
	if !reflect.DeepEqual(wins[1].Words, []int{-1, 1, 1, -1}) {
		t.Errorf("second window words = %v", wins[1].Words)
	}
}

func TestDecode(t *testing.T) {
	words := []string{"Jane", "Doe", "works", "at", "Acme", "Corp", "in", "Paris", "using", "Node", ".", "js"}
	labels := []string{"B-PER", "I-PER", "O", "O", "B-ORG", "I-ORG", "O", "B-LOC", "O", "B-MISC", "I-MISC", "I-MISC"}
	got := Decode(words, labels)
	want := Entities{
		Person:     []string{"Jane Doe"},
		Org:        []string{"Acme Corp"},
		GPE:        []string{"Paris"},
		NounChunks: []string{"Node.js"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %+v, want %+v", got, want)
	}
}

func TestDecode_danglingInside(t *testing.T) {
	got := Decode([]string{"Acme", "Jane"}, []string{"I-ORG", "I-PER"})
	if !reflect.DeepEqual(got.Org, []string{"Acme"}) || !reflect.DeepEqual(got.Person, []string{"Jane"}) {
		t.Errorf("Decode = %+v", got)
	}
}

func TestWordLabels(t *testing.T) {
	labels := []string{"O", "B-PER", "I-PER"}
	wins := []Window{{Words: []int{-1, 0, 0, 1, -1}}}
	logits := [][]float32{{
		9, 0, 0, // CLS
		0, 5, 1, // word 0 first piece -> B-PER
		9, 0, 0, // word 0 second piece ignored
		0, 1, 5, // word 1 -> I-PER
		9, 0, 0, // SEP
	}}
	got := WordLabels(wins, logits, labels, 3)
	want := []string{"B-PER", "I-PER", "O"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordLabels = %v, want %v", got, want)
	}
}

func TestCachedRecognizer(t *testing.T) {
	static := &StaticRecognizer{Entities: Entities{Person: []string{"Jane Doe"}}}
	rec := Cached(static, 2)
	for i := 0; i < 3; i++ {
		ents, err := rec.Recognize(context.Background(), "same text")
		if err != nil || len(ents.Person) != 1 {
			t.Fatalf("Recognize = %+v, %v", ents, err)
		}
	}
	if static.Calls.Load() != 1 {
		t.Errorf("backend called %d times, want 1", static.Calls.Load())
	}
}

func TestCache_evicts(t *testing.T) {
	c := NewCache(2)
	c.Set("a", Entities{Person: []string{"A"}})
	c.Set("b", Entities{})
	c.Get("a")
	c.Set("c", Entities{})
	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestProvider_loadsOnce(t *testing.T) {
	var loads int
	var mu sync.Mutex
	static := &StaticRecognizer{Entities: Entities{Org: []string{"Acme"}}}
	p := NewProvider(func() (Recognizer, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		return static, nil
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Get(); err != nil {
				t.Errorf("Get: %v", err)
			}
		}()
	}
	wg.Wait()
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !static.Closed.Load() {
		t.Error("Close should release the loaded recognizer")
	}
	if _, err := p.Get(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Get after Close err = %v, want ErrUnavailable", err)
	}
}

func TestProvider_closeWhileLoading(t *testing.T) {
	static := &StaticRecognizer{}
	loading := make(chan struct{})
	release := make(chan struct{})
	p := NewProvider(func() (Recognizer, error) {
		close(loading)
		<-release
		return static, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := p.Get()
		done <- err
	}()
	<-loading
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	close(release)

	if err := <-done; !errors.Is(err, ErrUnavailable) {
		t.Errorf("Get err = %v, want ErrUnavailable", err)
	}
	if !static.Closed.Load() {
		t.Error("recognizer loaded after Close was never closed")
	}
}

func TestProvider_sharedAcrossGoroutines(t *testing.T) {
	static := &StaticRecognizer{Entities: Entities{Org: []string{"Acme"}}}
	p := NewProvider(func() (Recognizer, error) { return static, nil })
	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Recognize(context.Background(), "Acme hired Jane"); err != nil {
				t.Errorf("Recognize: %v", err)
			}
		}()
	}
	wg.Wait()
	if got := static.Calls.Load(); got != workers {
		t.Errorf("Calls = %d, want %d", got, workers)
	}
}

func TestProvider_loadFailureDegrades(t *testing.T) {
	boom := errors.New("no model")
	p := NewProvider(func() (Recognizer, error) { return nil, boom })
	rec, err := p.Get()
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if _, ok := rec.(Noop); !ok {
		t.Errorf("recognizer = %T, want Noop", rec)
	}
	if _, err := p.Recognize(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("Recognize err = %v", err)
	}
}

func TestONNXLoader_requiresPaths(t *testing.T) {
	if _, err := ONNXLoader(ONNXConfig{}, 8)(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}
