package main

import (
	"fmt"

	"github.com/hyperjump/resumecua/internal/config"
	"github.com/hyperjump/resumecua/internal/extract"
	"github.com/hyperjump/resumecua/internal/keyword"
	"github.com/hyperjump/resumecua/internal/ner"
	"github.com/hyperjump/resumecua/internal/pipeline"
	"github.com/hyperjump/resumecua/internal/storage"
	"go.uber.org/zap"
)

// Components holds initialized services.
type Components struct {
	Storage    storage.Storage        // nil unless storage was requested
	Index      keyword.CandidateIndex // nil unless storage was requested
	Recognizer *ner.Provider          // nil when NER is disabled
	Pipeline   *pipeline.Pipeline
}

// Close releases the recognizer, the index and the database.
func (c *Components) Close() {
	if c.Recognizer != nil {
		_ = c.Recognizer.Close()
	}
	if c.Index != nil {
		_ = c.Index.Close()
	}
	if c.Storage != nil {
		_ = c.Storage.Close()
	}
}

// recognizerFor returns a lazily loaded ONNX recognizer, or nil when NER is disabled.
// The model is only loaded on the first document that asks for entities.
func recognizerFor(cfg *config.Config) *ner.Provider {
	if !cfg.NER.Enabled {
		return nil
	}
	return ner.NewProvider(ner.ONNXLoader(ner.ONNXConfig{
		ModelPath:  cfg.NER.ModelPath,
		VocabPath:  cfg.NER.VocabPath,
		Labels:     cfg.NER.Labels,
		MaxTokens:  cfg.NER.MaxTokens,
		Lowercase:  cfg.NER.Lowercase,
		OutputName: cfg.NER.OutputName,
	}, cfg.NER.CacheSize))
}

// initializeComponents builds the pipeline and, when withStorage is set, opens the
// candidate database and search index.
func initializeComponents(cfg *config.Config, logger *zap.Logger, withStorage bool, workers int) (*Components, error) {
	if workers <= 0 {
		workers = cfg.Parse.Workers
	}
	c := &Components{Recognizer: recognizerFor(cfg)}
	c.Pipeline = pipeline.New(extract.NewExtractor(),
		pipeline.WithLogger(logger),
		pipeline.WithRecognizer(c.Recognizer),
		pipeline.WithWorkers(workers),
	)
	if !withStorage {
		return c, nil
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = store

	idx, err := keyword.NewBleveIndex(cfg.Storage.IndexPath)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize search index: %w", err)
	}
	c.Index = idx

	if logger != nil {
		logger.Info("storage initialized",
			zap.String("database_path", cfg.Storage.DatabasePath),
			zap.String("index_path", cfg.Storage.IndexPath))
	}
	return c, nil
}
