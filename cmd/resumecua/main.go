// Package main is the resumecua CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hyperjump/resumecua/internal/cli"
	"github.com/hyperjump/resumecua/internal/config"
	"github.com/hyperjump/resumecua/internal/export"
	"github.com/hyperjump/resumecua/internal/extract"
	"github.com/hyperjump/resumecua/internal/fileid"
	"github.com/hyperjump/resumecua/internal/keyword"
	"github.com/hyperjump/resumecua/internal/models"
	"github.com/hyperjump/resumecua/internal/pipeline"
	"github.com/hyperjump/resumecua/internal/server"
	"github.com/hyperjump/resumecua/internal/storage"
	"github.com/hyperjump/resumecua/internal/textnorm"
	"github.com/hyperjump/resumecua/internal/watcher"
	"github.com/hyperjump/resumecua/pkg/utils"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var version = "dev"

const (
	defaultConfigPath = "/usr/local/etc/resumecua/config.yaml"
	defaultServerURL  = "http://localhost:8080"
	defaultOutputPath = "candidates.csv"
)

// loadConfig loads config from path. When path is the default, config.yaml in the current
// directory wins if present, and a missing default file yields the built-in defaults.
// Variables from ./.env and the RESUMECUA_ environment are applied last.
// Returns the config and the path that was actually loaded ("" for built-in defaults).
func loadConfig(path string) (*config.Config, string, error) {
	cfg, resolved, err := loadConfigFile(path)
	if err != nil {
		return nil, "", err
	}
	if err := config.LoadEnvFiles(".env"); err != nil {
		return nil, "", err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, "", err
	}
	return cfg, resolved, nil
}

func loadConfigFile(path string) (*config.Config, string, error) {
	if path == "" {
		path = defaultConfigPath
	}
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		if path == defaultConfigPath && config.IsNotExist(err) {
			return config.Default(), "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}
	command, args := os.Args[1], os.Args[2:]

	var err error
	switch command {
	case "parse":
		err = runParse(args, os.Stdout)
	case "score":
		err = runScore(args, os.Stdout)
	case "server":
		err = runServer(args)
	case "watch":
		err = runWatch(args, os.Stdout)
	case "search":
		err = runSearch(args, os.Stdout)
	case "delete":
		err = runDelete(args, os.Stdout)
	case "status":
		err = runStatus(args, os.Stdout)
	case "init":
		err = runInit(args, os.Stdout)
	case "version", "--version", "-v":
		fmt.Printf("resumecua version %s\n", version)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(name, usage string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: resumecua %s\n\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

// newLogger builds the command logger. Debug output goes to stderr so CLI results on
// stdout stay clean.
func newLogger(cfg *config.Config, debug bool) (*zap.Logger, error) {
	return utils.NewLogger(cfg.Debug || debug)
}

func runParse(args []string, out io.Writer) error {
	fs := newFlagSet("parse", "parse [flags]")
	input := fs.StringP("input", "i", ".", "folder containing resumes")
	output := fs.StringP("output", "o", defaultOutputPath, "output path; .csv, .xlsx or .json")
	useNER := fs.Bool("use-ner", false, "enable model-based entity detection for names and skills")
	keywords := fs.StringP("keywords", "k", "", "comma-separated keywords for relevancy scoring")
	details := fs.Bool("details", false, "include projects, certifications, languages, awards and confidence (JSON output)")
	store := fs.Bool("store", false, "save parsed candidates to the database and search index")
	workers := fs.IntP("workers", "w", 0, "documents parsed at once (default from config)")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	info, err := os.Stat(*input)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("input is not a folder: %s", *input)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := newLogger(cfg, *debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	opts := parseOptions(fs, cfg, *useNER, *keywords, *details)
	if opts.UseNER {
		cfg.NER.Enabled = true
	}

	components, err := initializeComponents(cfg, logger, *store, *workers)
	if err != nil {
		return err
	}
	defer components.Close()

	paths, err := pipeline.ListResumeFiles(*input, cfg.Parse.Extensions)
	if err != nil {
		return fmt.Errorf("list resumes: %w", err)
	}
	logger.Debug("parsing resumes", zap.String("input", *input), zap.Int("files", len(paths)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rows, err := components.Pipeline.ProcessFiles(ctx, paths, opts)
	if err != nil {
		return err
	}

	if *store {
		for i := range rows {
			rec := rows[i]
			rec.ID = fileid.CandidateID(paths[i])
			if err := saveCandidate(ctx, components, &rec); err != nil {
				logger.Warn("failed to store candidate", zap.String("path", paths[i]), zap.Error(err))
			}
		}
	}

	if err := export.WriteFile(*output, rows); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(out, "Wrote %d rows to %s\n", len(rows), *output)
	return nil
}

// parseOptions merges command flags over the config's parse section. Flags win only when
// set explicitly.
func parseOptions(fs *pflag.FlagSet, cfg *config.Config, useNER bool, keywords string, details bool) pipeline.Options {
	opts := pipeline.Options{
		UseNER:   cfg.Parse.UseNER,
		Keywords: pipeline.CleanKeywords(cfg.Parse.Keywords),
		Details:  cfg.Parse.IncludeDetails,
	}
	if fs.Changed("use-ner") {
		opts.UseNER = useNER
	}
	if fs.Changed("keywords") {
		opts.Keywords = pipeline.ParseKeywords(keywords)
	}
	if fs.Changed("details") {
		opts.Details = details
	}
	return opts
}

func saveCandidate(ctx context.Context, c *Components, rec *models.CandidateRecord) error {
	if err := c.Storage.SaveCandidate(ctx, rec); err != nil {
		return err
	}
	return c.Index.Index(ctx, rec)
}

func runScore(args []string, out io.Writer) error {
	fs := newFlagSet("score", "score [flags] <file>")
	keywords := fs.StringP("keywords", "k", "", "comma-separated keywords (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("score takes exactly one file")
	}
	kw := pipeline.ParseKeywords(*keywords)
	if len(kw) == 0 {
		return errors.New("--keywords is required")
	}
	raw, err := extract.NewExtractor().Extract(fs.Arg(0))
	if errors.Is(err, extract.ErrReadFailure) {
		fmt.Fprintf(os.Stderr, "Warning: %v; scoring empty text\n", err)
	} else if err != nil {
		return err
	}
	score := pipeline.ScoreRelevancy(textnorm.Normalize(raw), kw)
	fmt.Fprintf(out, "%s\n", strconv.FormatFloat(score, 'f', 2, 64))
	return nil
}

func runServer(args []string) error {
	fs := newFlagSet("server", "server [flags]")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	watch := fs.Bool("watch", true, "also watch the configured inbox directories")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()
	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger, true, 0)
	if err != nil {
		return err
	}
	defer components.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvOpts := []server.Option{server.WithStorage(components.Storage, components.Index)}
	if *watch && len(cfg.Watch.Directories) > 0 {
		w, err := startWatcher(ctx, cfg, components, logger)
		if err != nil {
			return err
		}
		defer w.Stop()
		srvOpts = append(srvOpts, server.WithWatch(w))
	}

	srv := server.NewServer(components.Pipeline, cfg, logger, srvOpts...)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// startWatcher watches cfg.Watch.Directories, parsing every new or changed resume into the
// store when watch storage is enabled, and syncs the files already present.
func startWatcher(ctx context.Context, cfg *config.Config, c *Components, logger *zap.Logger) (*watcher.Watcher, error) {
	opts := pipeline.Options{
		UseNER:   cfg.Parse.UseNER,
		Keywords: pipeline.CleanKeywords(cfg.Parse.Keywords),
		Details:  cfg.Parse.IncludeDetails,
	}
	inboxOpts := []watcher.InboxOption{watcher.WithInboxLogger(logger)}
	if cfg.Watch.StoreOrDefault() && c.Storage != nil {
		inboxOpts = append(inboxOpts, watcher.WithStore(c.Storage), watcher.WithIndex(c.Index))
	}
	inbox := watcher.NewInbox(c.Pipeline, opts, inboxOpts...)

	w := watcher.New(cfg.Watch.Directories, inbox,
		watcher.WithLogger(logger),
		watcher.WithExtensions(cfg.Parse.Extensions),
		watcher.WithRecursive(cfg.Watch.RecursiveOrDefault()),
	)
	if err := w.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}
	go w.Sync(ctx)
	return w, nil
}

func runWatch(args []string, out io.Writer) error {
	fs := newFlagSet("watch", "watch [flags] [directory...]")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	list := fs.Bool("list", false, "list the directories watched by a running server and exit")
	serverURL := fs.String("server", defaultServerURL, "server URL for --list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *list {
		dirs, err := watchDirectoriesViaHTTP(*serverURL)
		if err != nil {
			return err
		}
		for _, d := range dirs {
			fmt.Fprintln(out, d)
		}
		return nil
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if fs.NArg() > 0 {
		cfg.Watch.Directories = cfg.Watch.Directories[:0]
		for _, d := range fs.Args() {
			abs, err := filepath.Abs(d)
			if err != nil {
				return err
			}
			cfg.Watch.Directories = append(cfg.Watch.Directories, abs)
		}
	}
	if len(cfg.Watch.Directories) == 0 {
		fs.Usage()
		return errors.New("no directories to watch")
	}
	logger, err := newLogger(cfg, *debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger, cfg.Watch.StoreOrDefault(), 0)
	if err != nil {
		return err
	}
	defer components.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	w, err := startWatcher(ctx, cfg, components, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Watching %s\n", strings.Join(w.Roots(), ", "))
	<-ctx.Done()
	w.Stop()
	return nil
}

func watchDirectoriesViaHTTP(serverURL string) ([]string, error) {
	var resp struct {
		Directories []string `json:"directories"`
	}
	if err := getJSON(serverURL+"/api/v1/watch/directories", &resp); err != nil {
		return nil, err
	}
	return resp.Directories, nil
}

func runSearch(args []string, out io.Writer) error {
	fs := newFlagSet("search", "search [flags] <query>")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config file path (for direct storage mode)")
	serverURL := fs.String("server", defaultServerURL, "server URL (empty = use direct storage when server is not running)")
	limit := fs.IntP("limit", "n", 10, "number of results")
	offset := fs.Int("offset", 0, "results to skip")
	fuzzy := fs.Bool("fuzzy", false, "enable fuzzy matching for typo tolerance")
	outputFormat := fs.StringP("output", "o", "text", "output format: text, compact, or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	q := &models.CandidateQuery{
		Query:  buildSearchQuery(fs.Args()),
		Limit:  *limit,
		Offset: *offset,
		Fuzzy:  *fuzzy,
	}
	if err := q.Validate(); err != nil {
		fs.Usage()
		return err
	}

	search := func(q *models.CandidateQuery) (*models.SearchResponse, error) {
		return searchViaHTTP(*serverURL, q)
	}
	if *serverURL == "" {
		// Direct storage access; fails while a server holds the index lock.
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		components, err := initializeComponents(cfg, zap.NewNop(), true, 0)
		if err != nil {
			return err
		}
		defer components.Close()
		search = func(q *models.CandidateQuery) (*models.SearchResponse, error) {
			return searchDirect(context.Background(), components, q)
		}
	}

	response, err := search(q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	// Retry with typo tolerance when the exact query finds nothing.
	if !q.Fuzzy && response.Total == 0 {
		q.Fuzzy = true
		if fuzzyResponse, fuzzyErr := search(q); fuzzyErr == nil && fuzzyResponse.Total > 0 {
			response = fuzzyResponse
		}
	}
	return cli.WriteSearchResults(out, response, format)
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func searchViaHTTP(serverURL string, q *models.CandidateQuery) (*models.SearchResponse, error) {
	v := url.Values{}
	v.Set("q", q.Query)
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	if q.Fuzzy {
		v.Set("fuzzy", "true")
	}
	var response models.SearchResponse
	if err := getJSON(serverURL+"/api/v1/candidates/search?"+v.Encode(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func searchDirect(ctx context.Context, c *Components, q *models.CandidateQuery) (*models.SearchResponse, error) {
	start := time.Now()
	results, err := c.Index.Search(ctx, q.Query, q.Limit, &keyword.SearchOptions{
		Offset: q.Offset, Fuzzy: q.Fuzzy, SkillsBoost: 3.0,
	})
	if err != nil {
		return nil, err
	}
	resp := &models.SearchResponse{Hits: make([]*models.SearchHit, 0, len(results.Hits)), Total: results.Total, Query: q.Query}
	for _, hit := range results.Hits {
		cand, err := c.Storage.GetCandidate(ctx, hit.ID)
		if err != nil {
			continue
		}
		resp.Hits = append(resp.Hits, &models.SearchHit{
			Candidate:  cand,
			Score:      hit.Score,
			Highlights: hit.Highlights,
			Rank:       q.Offset + len(resp.Hits) + 1,
		})
	}
	resp.QueryTime = time.Since(start).Milliseconds()
	return resp, nil
}

func runDelete(args []string, out io.Writer) error {
	fs := newFlagSet("delete", "delete [flags] <candidate-id>")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config file path (for direct storage mode)")
	serverURL := fs.String("server", defaultServerURL, "server URL (empty = use direct storage)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("delete takes exactly one candidate id")
	}
	id := fs.Arg(0)

	if *serverURL != "" {
		req, err := http.NewRequest(http.MethodDelete, *serverURL+"/api/v1/candidates/"+url.PathEscape(id), nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		components, err := initializeComponents(cfg, zap.NewNop(), true, 0)
		if err != nil {
			return err
		}
		defer components.Close()
		ctx := context.Background()
		if err := components.Storage.DeleteCandidate(ctx, id); err != nil {
			return err
		}
		if err := components.Index.Delete(ctx, id); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Candidate deleted: %s\n", id)
	return nil
}

func runStatus(args []string, out io.Writer) error {
	fs := newFlagSet("status", "status [flags]")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config file path (for direct storage mode)")
	serverURL := fs.String("server", defaultServerURL, "server URL (empty = use direct storage)")
	outputFormat := fs.StringP("output", "o", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}

	var status *cli.Status
	if *serverURL != "" {
		status = &cli.Status{}
		if err := getJSON(*serverURL+"/api/v1/status", status); err != nil {
			return fmt.Errorf("status failed: %w", err)
		}
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		components, err := initializeComponents(cfg, zap.NewNop(), true, 0)
		if err != nil {
			return err
		}
		defer components.Close()
		status, err = statusDirect(context.Background(), cfg, components)
		if err != nil {
			return err
		}
	}
	return cli.WriteStatus(out, status, format)
}

func statusDirect(ctx context.Context, cfg *config.Config, c *Components) (*cli.Status, error) {
	count, err := c.Storage.CountCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("count candidates: %w", err)
	}
	indexed, err := c.Index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("count indexed: %w", err)
	}
	status := &cli.Status{
		Formats:    extract.SupportedExtensions(),
		Candidates: count,
		Indexed:    indexed,
		Config: &cli.StatusConfig{
			DatabasePath: cfg.Storage.DatabasePath,
			IndexPath:    cfg.Storage.IndexPath,
			NEREnabled:   cfg.NER.Enabled,
			Workers:      cfg.Parse.Workers,
		},
	}
	if fp, err := storage.MeasureFootprint(cfg.Storage.DatabasePath, cfg.Storage.IndexPath); err == nil {
		total := fp.Total()
		status.DiskUsageBytes = &total
	}
	return status, nil
}

func getJSON(u string, v interface{}) error {
	resp, err := http.Get(u)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func runInit(args []string, out io.Writer) error {
	fs := newFlagSet("init", "init [flags]")
	path := fs.StringP("config", "c", "config.yaml", "where to write the config")
	force := fs.Bool("force", false, "overwrite an existing config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists; use --force to overwrite", *path)
	}
	if err := config.Save(*path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote default config to %s\n", *path)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `resumecua - Resume field extraction and relevancy scoring

Usage:
  resumecua parse [flags]            Parse a folder of resumes into CSV/XLSX/JSON
  resumecua score [flags] <file>     Score one resume against keywords
  resumecua server [flags]           Start the HTTP API (and the inbox watcher)
  resumecua watch [flags] [dir...]   Parse resumes as they land in a directory
  resumecua search [flags] <query>   Search stored candidates
  resumecua delete [flags] <id>      Delete a stored candidate
  resumecua status [flags]           Show storage and index status
  resumecua init [flags]             Write a default config.yaml
  resumecua version                  Show version
  resumecua help                     Show this help

Parse Flags:
  -i, --input string      Folder containing resumes (default ".")
  -o, --output string     Output path; .csv, .xlsx or .json (default "candidates.csv")
      --use-ner           Enable model-based entity detection
  -k, --keywords string   Comma-separated keywords for relevancy scoring
      --details           Include auxiliary sections (JSON output)
      --store             Save parsed candidates to the database and search index
  -w, --workers int       Documents parsed at once
  -c, --config string     Config file path (default: /usr/local/etc/resumecua/config.yaml)

Search Flags:
  --server string    Server URL (default: http://localhost:8080). Use --server "" for direct storage.
  --limit int        Number of results (default: 10)
  --fuzzy            Enable typo tolerance
  --output string    text, compact or json

Examples:
  resumecua parse --input ./resumes --keywords "python,aws,docker"
  resumecua parse -i ./resumes -o candidates.xlsx --use-ner
  resumecua score --keywords go,kubernetes resume.pdf
  resumecua search terraform
  resumecua status --output json`)
}
