// Package pipeline orchestrates one synthesis run: scan, validate, render
// the indices, export the JSON snapshot, and generate the feed.
package pipeline

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/JPEWdev/yeps/internal/api"
	"github.com/JPEWdev/yeps/internal/classify"
	"github.com/JPEWdev/yeps/internal/config"
	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/excerptcache"
	"github.com/JPEWdev/yeps/internal/feed"
	"github.com/JPEWdev/yeps/internal/index"
	"github.com/JPEWdev/yeps/internal/logfields"
	"github.com/JPEWdev/yeps/internal/metrics"
	"github.com/JPEWdev/yeps/internal/refs"
	"github.com/JPEWdev/yeps/internal/yep"
)

// Pipeline runs index synthesis for one configuration.
type Pipeline struct {
	cfg      *config.Config
	recorder metrics.Recorder
}

// New creates a Pipeline. A nil recorder disables metrics.
func New(cfg *config.Config, recorder metrics.Recorder) *Pipeline {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Pipeline{cfg: cfg, recorder: recorder}
}

// Run performs one full synthesis. Any fatal error aborts the run; no
// partial outputs are considered valid.
func (p *Pipeline) Run() error {
	buildID := uuid.NewString()
	start := time.Now()
	slog.Info("Starting index synthesis", logfields.BuildID(buildID), logfields.Path(p.cfg.Source.Directory))

	err := p.run(buildID)

	duration := time.Since(start)
	p.recorder.ObserveBuildDuration(duration)
	if err != nil {
		p.recorder.IncBuildOutcome("failed")
		slog.Error("Index synthesis failed", logfields.BuildID(buildID), logfields.Error(err))
		return err
	}
	p.recorder.IncBuildOutcome("success")
	slog.Info("Index synthesis finished", logfields.BuildID(buildID), logfields.DurationMS(float64(duration.Milliseconds())))
	return nil
}

func (p *Pipeline) run(buildID string) error {
	cfg := p.cfg
	yeps, err := ScanSources(cfg.Source.Directory)
	if err != nil {
		return err
	}
	p.recorder.SetDocumentsParsed(len(yeps))
	slog.Info("Parsed proposal documents", logfields.Count(len(yeps)))

	resolver := &refs.Resolver{Builder: cfg.Site.Builder, BaseURL: cfg.Site.BaseURL}
	docs := index.NewDocSet(cfg.Source.Directory)

	numerical := index.NewWriter(cfg.Reserved, cfg.Topics, cfg.Site.Builder).WriteNumericalIndex(yeps)
	if _, err := docs.Add("numerical", numerical); err != nil {
		return err
	}

	master, err := index.NewWriter(cfg.Reserved, cfg.Topics, cfg.Site.Builder).
		WriteIndex(yeps, index.Header, index.Intro, index.MasterOptions())
	if err != nil {
		return err
	}
	zeroPath, err := docs.Add("yep-0000", master)
	if err != nil {
		return err
	}

	// The regenerated YEP 0 joins the record set so sub-indices include it.
	zero, err := yep.ParseFile(zeroPath)
	if err != nil {
		return err
	}
	yeps = append(yeps, zero)

	if err := index.GenerateSubindices(cfg.Topics, yeps, docs, cfg.Site.Builder); err != nil {
		return err
	}
	p.recorder.SetIndexPagesGenerated(len(docs.Names()))
	slog.Info("Generated index documents", logfields.Count(len(docs.Names())))

	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "create output directory")
	}
	if err := api.WriteSnapshot(yeps, cfg.Output.Directory, resolver); err != nil {
		return err
	}
	slog.Info("Wrote metadata snapshot", logfields.Path(cfg.Output.Directory))

	return p.generateFeed(resolver)
}

func (p *Pipeline) generateFeed(resolver *refs.Resolver) error {
	loader := &feed.TreeLoader{}
	if store, err := excerptcache.Open(p.cfg.Cache.Path); err != nil {
		// The cache is an optimization; a broken cache never fails the feed.
		slog.Warn("Excerpt cache unavailable", logfields.Error(err))
	} else {
		loader.Excerpts = store
		defer func() { _ = store.Close() }()
	}

	generator := &feed.Generator{
		Cache:       feed.NewDocCache(loader),
		Resolver:    resolver,
		Title:       "Newest Yocto YEPs",
		Link:        p.cfg.Site.BaseURL,
		Description: p.cfg.Site.Description,
	}
	if err := generator.WriteFeed(p.cfg.Source.Directory, p.cfg.Output.Directory); err != nil {
		return err
	}
	slog.Info("Wrote syndication feed", logfields.Path(p.cfg.Output.Directory))
	return nil
}

// Validate runs the fail-fast half of the build without writing any outputs:
// parsing, classification, and the author registry check.
func (p *Pipeline) Validate() error {
	yeps, err := ScanSources(p.cfg.Source.Directory)
	if err != nil {
		return err
	}
	if _, err := classify.ClassifyAll(yeps); err != nil {
		return err
	}
	if _, err := yep.VerifyEmailAddresses(yeps); err != nil {
		return err
	}
	slog.Info("All proposal documents are valid", logfields.Count(len(yeps)))
	return nil
}
