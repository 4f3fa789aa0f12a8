package ner

import (
	"context"
	"sync"
)

// Loader builds the backing recognizer. It runs at most once per Provider.
type Loader func() (Recognizer, error)

// Provider lazily loads a recognizer on first use and shares it between goroutines.
// A failed load leaves the provider serving Noop; the load error is kept for the caller
// to report once.
type Provider struct {
	load Loader

	once    sync.Once
	mu      sync.Mutex
	rec     Recognizer
	loadErr error
	closed  bool
}

// NewProvider returns a provider that calls load on first use. A nil load yields Noop.
func NewProvider(load Loader) *Provider {
	return &Provider{load: load}
}

// Get returns the shared recognizer, loading it if needed, and the load error if any.
// The returned recognizer is never nil.
func (p *Provider) Get() (Recognizer, error) {
	p.once.Do(func() {
		p.mu.Lock()
		closed := p.closed
		p.mu.Unlock()
		if closed {
			return
		}
		var rec Recognizer = Noop{}
		var err error
		if p.load != nil {
			if loaded, lerr := p.load(); lerr != nil {
				err = lerr
			} else if loaded != nil {
				rec = loaded
			}
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed {
			// Close ran while loading; nobody else will release this one.
			_ = rec.Close()
			return
		}
		p.rec, p.loadErr = rec, err
	})
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return Noop{}, ErrUnavailable
	}
	return p.rec, p.loadErr
}

// Recognize runs the shared recognizer. Load failures surface as the returned error.
func (p *Provider) Recognize(ctx context.Context, text string) (Entities, error) {
	rec, err := p.Get()
	if err != nil {
		return Entities{}, err
	}
	return rec.Recognize(ctx, text)
}

// Close releases the loaded recognizer. Later calls to Get report ErrUnavailable.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.rec != nil {
		return p.rec.Close()
	}
	return nil
}

// ONNXLoader returns a Loader for a token classification model whose results are cached
// per text.
func ONNXLoader(cfg ONNXConfig, cacheSize int) Loader {
	return func() (Recognizer, error) {
		if cfg.ModelPath == "" || cfg.VocabPath == "" {
			return nil, ErrUnavailable
		}
		rec, err := NewONNXRecognizer(cfg)
		if err != nil {
			return nil, err
		}
		return Cached(rec, cacheSize), nil
	}
}
