package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPPTX: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	pipeline.FormatJSON: "application/json",
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; padding: 24px; background: #141E33; font-family: sans-serif; color: #DBEAFE; }
figure { margin: 0 auto 32px; max-width: 1280px; }
img { width: 100%; display: block; box-shadow: 0 4px 16px rgba(0,0,0,.4); }
figcaption { margin-top: 8px; font-size: 14px; }
a { color: #93C5FD; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{len .Slides}} slides &middot; <a href="/deck.pptx">deck.pptx</a> &middot; <a href="/deck.json">deck.json</a></p>
{{range .Slides}}<figure>
<img src="/slides/{{.N}}.svg" alt="slide {{.N}}">
<figcaption>{{.N}}. {{.Title}}{{if .OffPage}} &middot; {{.OffPage}} element(s) off the slide{{end}}</figcaption>
</figure>
{{end}}</body>
</html>
`))

type indexSlide struct {
	N       int
	Title   string
	OffPage int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	d, _, err := s.runner.Load(r.Context(), s.opts.DeckPath)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	doc, err := s.runner.Assemble(r.Context(), d)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data := struct {
		Title  string
		Slides []indexSlide
	}{Title: d.Title}
	for i, c := range doc.Slides {
		title := c.Title
		if title == "" {
			title = string(d.Slides[i].Kind)
		}
		data.Slides = append(data.Slides, indexSlide{N: i + 1, Title: title, OffPage: len(c.OutOfBounds())})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleSlide(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "n"))
		if err != nil || n < 1 {
			s.fail(w, r, errors.New(errors.ErrCodeSlideNotFound, "no slide %q", chi.URLParam(r, "n")))
			return
		}
		res, err := s.build(r.Context(), format)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		a, ok := res.Artifact(format, n)
		if !ok {
			s.fail(w, r, errors.New(errors.ErrCodeSlideNotFound, "slide %d out of range 1..%d", n, res.Stats.Slides))
			return
		}
		s.write(w, a)
	}
}

func (s *Server) handleDeck(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.build(r.Context(), format)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		a, ok := res.Artifact(format, 0)
		if !ok {
			s.fail(w, r, errors.New(errors.ErrCodeInternal, "build produced no %s", format))
			return
		}
		if format == pipeline.FormatPPTX {
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "deck.pptx"))
		}
		s.write(w, a)
	}
}

func (s *Server) write(w http.ResponseWriter, a pipeline.Artifact) {
	w.Header().Set("Content-Type", contentTypes[a.Format])
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	_, _ = w.Write(a.Data)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeSlideNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidDeck, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidGeometry:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
