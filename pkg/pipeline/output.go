package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/slidedeck/pkg/errors"
)

// Layout of a build's files, given the presentation path out:
//
//	out                      deck.pptx
//	<base>.json              element dump
//	<base>_slides/slide-NN.* per-slide formats
//
// where <base> is out without its extension.

// OutputPaths maps each artifact to the path Write would use.
func (r *Result) OutputPaths(out string) map[string]string {
	base := strings.TrimSuffix(out, filepath.Ext(out))
	paths := make(map[string]string, len(r.Artifacts))
	for _, a := range r.Artifacts {
		var p string
		switch {
		case a.Format == FormatPPTX:
			p = out
		case a.Slide == 0:
			p = base + "." + a.Format
		default:
			p = filepath.Join(base+"_slides", a.Name())
		}
		paths[a.Name()] = p
	}
	return paths
}

// Write stores every artifact next to out and returns the written paths in
// artifact order.
func (r *Result) Write(out string) ([]string, error) {
	if err := errors.ValidateOutputPath(out); err != nil {
		return nil, err
	}
	paths := r.OutputPaths(out)
	written := make([]string, 0, len(r.Artifacts))
	for _, a := range r.Artifacts {
		p := paths[a.Name()]
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return written, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
			}
		}
		if err := os.WriteFile(p, a.Data, 0644); err != nil {
			return written, errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", p)
		}
		written = append(written, p)
	}
	return written, nil
}
