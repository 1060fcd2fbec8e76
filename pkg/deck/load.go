package deck

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/slidedeck/pkg/errors"
)

//go:embed default.toml
var defaultTOML []byte

// Format is the encoding of a deck file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf infers the deck format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported deck file %q (use .toml, .yaml or .yml)", path)
}

// Default returns the built-in deck.
func Default() (*Deck, error) {
	return Parse(defaultTOML, FormatTOML)
}

// DefaultSource returns the raw TOML of the built-in deck.
func DefaultSource() []byte {
	return bytes.Clone(defaultTOML)
}

// Load reads and validates a deck file. An empty path loads the built-in deck.
func Load(path string) (*Deck, []byte, error) {
	if path == "" {
		d, err := Default()
		return d, DefaultSource(), err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.New(errors.ErrCodeFileNotFound, "deck file not found: %s", path)
		}
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, nil, err
	}
	return d, data, nil
}

// Parse decodes and validates a deck. Missing page size and output fall back
// to the widescreen defaults.
func Parse(data []byte, format Format) (*Deck, error) {
	var d Deck
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown deck format %q", format)
	}

	if d.Width == 0 {
		d.Width = DefaultWidth
	}
	if d.Height == 0 {
		d.Height = DefaultHeight
	}
	if d.Output == "" {
		d.Output = DefaultOutput
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
