//go:build cgo
// +build cgo

package ner

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXConfig describes a BERT-style token classification model.
type ONNXConfig struct {
	ModelPath  string
	VocabPath  string
	Labels     []string
	MaxTokens  int
	Lowercase  bool
	OutputName string
}

// ONNXRecognizer runs a token classification model through ONNX Runtime. It requires CGO
// and the onnxruntime shared library.
type ONNXRecognizer struct {
	session   *ort.AdvancedSession
	tokenizer *WordPiece
	labels    []string
	maxTokens int
	// Pre-allocated tensors for Run(); we update input data and read output.
	inputIDsTensor      *ort.Tensor[int64]
	attentionMaskTensor *ort.Tensor[int64]
	tokenTypeIDsTensor  *ort.Tensor[int64]
	outputTensor        *ort.Tensor[float32]
	mu                  sync.Mutex
}

// NewONNXRecognizer loads the vocabulary and model. InitializeEnvironment is called if
// not already done.
func NewONNXRecognizer(cfg ONNXConfig) (*ONNXRecognizer, error) {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 128
	}
	if len(cfg.Labels) == 0 {
		cfg.Labels = DefaultLabels
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "logits"
	}
	tokenizer, err := LoadVocab(cfg.VocabPath, cfg.Lowercase)
	if err != nil {
		return nil, err
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
		}
	}

	shape := ort.NewShape(1, int64(cfg.MaxTokens))
	inputIDsTensor, err := ort.NewEmptyTensor[int64](shape)
	if err != nil {
		return nil, fmt.Errorf("failed to create input_ids tensor: %w", err)
	}
	attentionMaskTensor, err := ort.NewEmptyTensor[int64](shape)
	if err != nil {
		inputIDsTensor.Destroy()
		return nil, fmt.Errorf("failed to create attention_mask tensor: %w", err)
	}
	tokenTypeIDsTensor, err := ort.NewEmptyTensor[int64](shape)
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		return nil, fmt.Errorf("failed to create token_type_ids tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(cfg.MaxTokens), int64(len(cfg.Labels))))
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		tokenTypeIDsTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		cfg.ModelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{cfg.OutputName},
		[]ort.ArbitraryTensor{inputIDsTensor, attentionMaskTensor, tokenTypeIDsTensor},
		[]ort.ArbitraryTensor{outputTensor},
		nil,
	)
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		tokenTypeIDsTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNXRecognizer{
		session:             session,
		tokenizer:           tokenizer,
		labels:              cfg.Labels,
		maxTokens:           cfg.MaxTokens,
		inputIDsTensor:      inputIDsTensor,
		attentionMaskTensor: attentionMaskTensor,
		tokenTypeIDsTensor:  tokenTypeIDsTensor,
		outputTensor:        outputTensor,
	}, nil
}

// Recognize labels every word of text and groups the labels into entities.
func (r *ONNXRecognizer) Recognize(ctx context.Context, text string) (Entities, error) {
	words := SplitWords(text)
	if len(words) == 0 {
		return Entities{}, nil
	}
	windows := r.tokenizer.Windows(r.tokenizer.Encode(words), r.maxTokens)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return Entities{}, ErrUnavailable
	}

	logits := make([][]float32, 0, len(windows))
	for _, win := range windows {
		if err := ctx.Err(); err != nil {
			return Entities{}, err
		}
		copy(r.inputIDsTensor.GetData(), win.InputIDs)
		copy(r.attentionMaskTensor.GetData(), win.AttentionMask)
		copy(r.tokenTypeIDsTensor.GetData(), win.TokenTypeIDs)
		if err := r.session.Run(); err != nil {
			return Entities{}, fmt.Errorf("inference failed: %w", err)
		}
		out := make([]float32, len(r.outputTensor.GetData()))
		copy(out, r.outputTensor.GetData())
		logits = append(logits, out)
	}

	return Decode(words, WordLabels(windows, logits, r.labels, len(words))), nil
}

// Close destroys the session and tensors.
func (r *ONNXRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil {
		return nil
	}
	err := r.session.Destroy()
	r.session = nil
	_ = r.inputIDsTensor.Destroy()
	_ = r.attentionMaskTensor.Destroy()
	_ = r.tokenTypeIDsTensor.Destroy()
	_ = r.outputTensor.Destroy()
	r.inputIDsTensor, r.attentionMaskTensor, r.tokenTypeIDsTensor, r.outputTensor = nil, nil, nil, nil
	return err
}
