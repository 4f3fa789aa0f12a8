//go:build !cgo
// +build !cgo

package ner

import "fmt"

// ONNXConfig describes a BERT-style token classification model.
type ONNXConfig struct {
	ModelPath  string
	VocabPath  string
	Labels     []string
	MaxTokens  int
	Lowercase  bool
	OutputName string
}

// ONNXRecognizer stub type when built without CGO (see onnx.go for real implementation).
type ONNXRecognizer struct{ Noop }

// NewONNXRecognizer returns ErrUnavailable when built without CGO.
func NewONNXRecognizer(ONNXConfig) (*ONNXRecognizer, error) {
	return nil, fmt.Errorf("ONNX recognizer requires CGO; build with CGO_ENABLED=1 and onnxruntime: %w", ErrUnavailable)
}
