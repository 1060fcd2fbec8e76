package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidedeck/pkg/pipeline"
)

// newLogger returns the CLI logger. Timestamps read "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logBuild reports a finished build at info level with the total time,
// and the per-stage timings at debug level.
func logBuild(logger *log.Logger, deck string, res *pipeline.Result) {
	st := res.Stats
	total := (st.LoadTime + st.AssembleTime + st.RenderTime).Round(time.Millisecond)
	logger.Info("built", "deck", deck, "slides", st.Slides, "took", total)
	logger.Debug("build stages",
		"id", res.BuildID,
		"load", st.LoadTime.Round(time.Microsecond),
		"assemble", st.AssembleTime.Round(time.Microsecond),
		"render", st.RenderTime.Round(time.Microsecond),
		"cached", st.CacheHits,
	)
}
