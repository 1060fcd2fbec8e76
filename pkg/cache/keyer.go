package cache

// Keyer derives cache keys. The pipeline only talks to a Keyer, so a
// deployment can namespace keys without touching the render code.
type Keyer interface {
	// ArtifactKey names one rendered output of a deck.
	ArtifactKey(deckHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Slide  int     `json:"slide,omitempty"` // 1-based; 0 for whole-deck formats
	DPI    float64 `json:"dpi,omitempty"`
	// Outlines marks SVGs drawn with text-box outlines.
	Outlines bool `json:"outlines,omitempty"`
	// Version is the producing binary's version, so upgrades invalidate.
	Version string `json:"version,omitempty"`
}

// DefaultKeyer hashes the options next to the deck hash.
type DefaultKeyer struct {
	version string
}

// NewDefaultKeyer returns a keyer whose keys change with version.
func NewDefaultKeyer(version string) Keyer {
	return &DefaultKeyer{version: version}
}

// ArtifactKey returns "artifact:<sha256>".
func (k *DefaultKeyer) ArtifactKey(deckHash string, opts ArtifactKeyOpts) string {
	if opts.Version == "" {
		opts.Version = k.version
	}
	return hashKey("artifact", deckHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
