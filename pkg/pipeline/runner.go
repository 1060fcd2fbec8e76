package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/slidedeck/pkg/buildinfo"
	"github.com/matzehuels/slidedeck/pkg/cache"
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/deck"
	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/observability"
)

// buildNamespace seeds the deterministic build IDs.
var buildNamespace = uuid.MustParse("5b0f6b8e-3c1a-4c55-9a0e-8d2f1e6c7a41")

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options; every call
// assembles its own document.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long stored artifacts live. Zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer for the current version is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer(buildinfo.Version)
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// BuildID derives the build identifier for a deck hash.
func BuildID(deckHash string) uuid.UUID {
	return uuid.NewSHA1(buildNamespace, []byte(deckHash+"@"+buildinfo.Version))
}

// Execute runs load → assemble → render with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	start := time.Now()
	d, hash, err := r.Load(ctx, opts.DeckPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Deck = d
	result.DeckHash = hash
	result.BuildID = BuildID(hash)
	result.Stats.LoadTime = time.Since(start)

	r.Logger.Debug("loaded deck",
		"title", d.Title,
		"slides", len(d.Slides),
		"duration", result.Stats.LoadTime)

	// Stage 2: Assemble
	start = time.Now()
	doc, err := r.Assemble(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Document = doc
	result.Stats.AssembleTime = time.Since(start)
	result.Stats.Slides = len(doc.Slides)
	result.Stats.Elements = doc.ElementCount()

	result.OffPage = offPage(doc)
	if len(result.OffPage) > 0 {
		if opts.Strict {
			return nil, errors.New(errors.ErrCodeInvalidGeometry,
				"elements outside the slide on %d slide(s): %v", len(result.OffPage), result.OffPage)
		}
		for n, idx := range result.OffPage {
			r.Logger.Warn("elements outside slide", "slide", n, "elements", idx)
		}
	}

	r.Logger.Info("assembled slides",
		"slides", result.Stats.Slides,
		"elements", result.Stats.Elements,
		"duration", result.Stats.AssembleTime)

	// Stage 3: Render
	start = time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, doc, hash, result.BuildID, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.CacheHits = hits
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"files", len(artifacts),
		"cached", hits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads a deck and hashes its source.
func (r *Runner) Load(ctx context.Context, path string) (*deck.Deck, string, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	d, src, err := deck.Load(path)
	slides := 0
	if d != nil {
		slides = len(d.Slides)
	}
	hooks.OnLoadComplete(ctx, path, slides, time.Since(start), err)
	if err != nil {
		return nil, "", err
	}
	return d, cache.Hash(src), nil
}

// Assemble draws every slide of d.
func (r *Runner) Assemble(ctx context.Context, d *deck.Deck) (*canvas.Document, error) {
	hooks := observability.Pipeline()
	hooks.OnAssembleStart(ctx, len(d.Slides))
	start := time.Now()

	doc, err := deck.Assemble(d)
	elements := 0
	if doc != nil {
		elements = doc.ElementCount()
	}
	hooks.OnAssembleComplete(ctx, elements, time.Since(start), err)
	return doc, err
}

// RenderWithCacheInfo renders every requested format, serving artifacts
// from the cache where possible. It returns the number of cache hits.
// A format is re-rendered as a whole if any of its artifacts is missing.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *canvas.Document, deckHash string, buildID uuid.UUID, opts Options) ([]Artifact, int, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var (
		out  []Artifact
		hits int
	)
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, hits, err
		}
		if cached, ok := r.cachedFormat(ctx, doc, deckHash, format, opts); ok {
			out = append(out, cached...)
			hits += len(cached)
			continue
		}

		rendered, err := RenderFormat(ctx, doc, format, buildID, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, hits, err
		}
		for _, a := range rendered {
			r.store(ctx, deckHash, a, opts)
		}
		out = append(out, rendered...)
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return out, hits, nil
}

// Render is a convenience wrapper that discards the cache hit count.
func (r *Runner) Render(ctx context.Context, doc *canvas.Document, deckHash string, opts Options) ([]Artifact, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, deckHash, BuildID(deckHash), opts)
	return artifacts, err
}

func (r *Runner) cachedFormat(ctx context.Context, doc *canvas.Document, deckHash, format string, opts Options) ([]Artifact, bool) {
	if opts.Refresh {
		return nil, false
	}
	slides := []int{0}
	if PerSlide(format) {
		slides = make([]int, len(doc.Slides))
		for i := range slides {
			slides[i] = i + 1
		}
	}

	out := make([]Artifact, 0, len(slides))
	for _, n := range slides {
		key := r.Keyer.ArtifactKey(deckHash, opts.ArtifactKeyOpts(format, n))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, format)
			return nil, false
		}
		out = append(out, Artifact{Format: format, Slide: n, Data: data, Cached: true})
	}
	observability.Cache().OnCacheHit(ctx, format)
	return out, true
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

func (r *Runner) store(ctx context.Context, deckHash string, a Artifact, opts Options) {
	key := r.Keyer.ArtifactKey(deckHash, opts.ArtifactKeyOpts(a.Format, a.Slide))
	if err := r.Cache.Set(ctx, key, a.Data, r.ttl()); err != nil {
		r.Logger.Warn("cache write failed", "artifact", a.Name(), "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, a.Format, len(a.Data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func offPage(doc *canvas.Document) map[int][]int {
	out := make(map[int][]int)
	for i, c := range doc.Slides {
		if idx := c.OutOfBounds(); len(idx) > 0 {
			out[i+1] = idx
		}
	}
	return out
}
