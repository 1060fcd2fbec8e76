package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidedeck/pkg/cache"
	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/observability"
)

const tinyDeck = `
title: Tiny
slides:
  - kind: overview
    title: Overview
    panels:
      - heading: About
        box: {x: 0.35, y: 1.25, w: 5.9, h: 5.75}
        bullets: [a, b, c]
`

const offPageDeck = `
title: Overflow
slides:
  - kind: overview
    title: Overview
    panels:
      - heading: Too low
        box: {x: 0.35, y: 6.0, w: 5.9, h: 3.0}
        bullets: [a]
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteDefaultDeck(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	defer r.Close()

	res, err := r.Execute(context.Background(), Options{Formats: []string{"pptx", "json", "svg"}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Stats.Slides != 8 {
		t.Errorf("Slides = %d, want 8", res.Stats.Slides)
	}
	if res.Stats.Elements != res.Document.ElementCount() || res.Stats.Elements == 0 {
		t.Errorf("Elements = %d", res.Stats.Elements)
	}
	if len(res.Artifacts) != 10 {
		t.Fatalf("artifacts = %d, want 1 pptx + 1 json + 8 svg", len(res.Artifacts))
	}
	if res.Artifacts[0].Format != "pptx" || res.Artifacts[2].Name() != "slide-01.svg" || res.Artifacts[9].Name() != "slide-08.svg" {
		t.Errorf("artifact order = %s, %s, %s", res.Artifacts[0].Name(), res.Artifacts[2].Name(), res.Artifacts[9].Name())
	}
	if res.BuildID != BuildID(res.DeckHash) {
		t.Error("BuildID should derive from the deck hash")
	}
	if len(res.OffPage) != 0 {
		t.Errorf("built-in deck has off-page elements: %v", res.OffPage)
	}
	pptx, ok := res.Artifact("pptx", 0)
	if !ok || len(pptx.Data) == 0 {
		t.Fatal("missing pptx artifact")
	}
	if !bytes.Contains(pptx.Data, []byte("docProps/core.xml")) {
		t.Error("pptx artifact is not a package")
	}
}

func TestExecuteIsReproducible(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	opts := Options{Formats: []string{"pptx"}}

	a, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts[0].Data, b.Artifacts[0].Data) {
		t.Error("two builds of the same deck should produce identical packages")
	}
}

func TestExecuteCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, quietLogger())
	defer r.Close()
	ctx := context.Background()
	opts := Options{DeckPath: writeDeck(t, tinyDeck), Formats: []string{"pptx", "png"}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	if first.Stats.CacheHits != 0 {
		t.Errorf("first build hits = %d", first.Stats.CacheHits)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if second.Stats.CacheHits != len(second.Artifacts) {
		t.Errorf("second build hits = %d, want %d", second.Stats.CacheHits, len(second.Artifacts))
	}
	for i, a := range second.Artifacts {
		if !a.Cached {
			t.Errorf("%s not served from cache", a.Name())
		}
		if !bytes.Equal(a.Data, first.Artifacts[i].Data) {
			t.Errorf("%s differs from the first build", a.Name())
		}
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Stats.CacheHits != 0 {
		t.Errorf("refresh build hits = %d", third.Stats.CacheHits)
	}

	opts.Refresh = false
	opts.DPI = 48
	fourth, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fourth.Stats.CacheHits != 1 {
		t.Errorf("changing dpi should only reuse the pptx, hits = %d", fourth.Stats.CacheHits)
	}
}

func TestExecuteStrict(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	path := writeDeck(t, offPageDeck)

	res, err := r.Execute(context.Background(), Options{DeckPath: path})
	if err != nil {
		t.Fatalf("lenient build: %v", err)
	}
	if len(res.OffPage[1]) == 0 {
		t.Error("off-page panel not reported")
	}

	_, err = r.Execute(context.Background(), Options{DeckPath: path, Strict: true})
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("strict build error = %v, want INVALID_GEOMETRY", err)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	dir := t.TempDir()

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"missing deck", Options{DeckPath: filepath.Join(dir, "nope.toml")}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(context.Background(), tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("Execute() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExecuteCancelled(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Execute(ctx, Options{Formats: []string{"svg"}})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

// ttlCache records the TTL of every write.
type ttlCache struct {
	cache.Cache
	mu   sync.Mutex
	ttls []time.Duration
}

func (c *ttlCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.ttls = append(c.ttls, ttl)
	c.mu.Unlock()
	return c.Cache.Set(ctx, key, data, ttl)
}

func TestExecuteTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{"default", 0, cache.TTLArtifact},
		{"preview", cache.TTLPreview, cache.TTLPreview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ttlCache{Cache: cache.NewNullCache()}
			r := NewRunner(c, nil, quietLogger())
			r.TTL = tt.ttl
			if _, err := r.Execute(context.Background(), Options{Formats: []string{"json"}}); err != nil {
				t.Fatal(err)
			}
			if len(c.ttls) == 0 {
				t.Fatal("nothing stored")
			}
			for _, got := range c.ttls {
				if got != tt.want {
					t.Errorf("stored with ttl %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRenderSlide(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	d, _, err := r.Load(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := r.Assemble(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}

	a, err := RenderSlide(context.Background(), doc, 2, FormatSVG, Options{})
	if err != nil {
		t.Fatalf("RenderSlide: %v", err)
	}
	if a.Name() != "slide-02.svg" || !bytes.HasPrefix(a.Data, []byte("<svg")) {
		t.Errorf("RenderSlide() = %s, %.20q", a.Name(), a.Data)
	}

	if _, err := RenderSlide(context.Background(), doc, 9, FormatSVG, Options{}); !errors.Is(err, errors.ErrCodeSlideNotFound) {
		t.Errorf("slide 9 error = %v", err)
	}
	if _, err := RenderSlide(context.Background(), doc, 1, FormatPPTX, Options{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("pptx per slide error = %v", err)
	}
}

func TestResultWrite(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Execute(context.Background(), Options{
		DeckPath: writeDeck(t, tinyDeck),
		Formats:  []string{"pptx", "json", "svg"},
	})
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "build", "tiny.pptx")
	paths, err := res.Write(out)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("wrote %d files, want 3", len(paths))
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty: %v", p, err)
		}
	}
	if paths[0] != out {
		t.Errorf("pptx written to %s, want %s", paths[0], out)
	}

	if _, err := res.Write(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Write(\"\") error = %v", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	stages []string
}

func (h *recordingHooks) add(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stages = append(h.stages, s)
}

func (h *recordingHooks) OnLoadComplete(_ context.Context, _ string, _ int, _ time.Duration, _ error) {
	h.add("load")
}

func (h *recordingHooks) OnAssembleComplete(_ context.Context, _ int, _ time.Duration, _ error) {
	h.add("assemble")
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, _ error) {
	h.add("render")
}

func TestExecuteEmitsHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)

	r := NewRunner(nil, nil, quietLogger())
	if _, err := r.Execute(context.Background(), Options{DeckPath: writeDeck(t, tinyDeck)}); err != nil {
		t.Fatal(err)
	}

	want := []string{"load", "assemble", "render"}
	if len(h.stages) != len(want) {
		t.Fatalf("stages = %v, want %v", h.stages, want)
	}
	for i := range want {
		if h.stages[i] != want[i] {
			t.Errorf("stages = %v, want %v", h.stages, want)
			break
		}
	}
}
