// Package report formats the CFTP progress output spec.md §6 requires on
// stderr when -report is set, and the terminal summary line. Presentation
// only: nothing here feeds back into the driver.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"latticecftp/pkg/cftp"
)

// Reporter implements cftp.Report, writing lines to w. Each Reporter tags
// its lines with a random run ID so that separate runs writing to a shared
// log stream can be told apart. cmd/seed-sweep passes no reporter.
type Reporter struct {
	w      io.Writer
	runID  string
	start  time.Time
	silent bool
}

// New constructs a Reporter. When enabled is false, every method is a no-op
// — callers still get a valid cftp.Report to pass through without branching
// on -report at every call site.
func New(w io.Writer, enabled bool) *Reporter {
	return &Reporter{w: w, runID: uuid.NewString()[:8], start: time.Now(), silent: !enabled}
}

var _ cftp.Report = (*Reporter)(nil)

// Epoch emits "Using max steps T, volume difference at time -s is D".
func (r *Reporter) Epoch(window, stepsFromZero, volumeDiff int) {
	if r.silent {
		return
	}
	fmt.Fprintf(r.w, "[%s] Using max steps %d, volume difference at time -%d is %d\n",
		r.runID, window, stepsFromZero, volumeDiff)
}

// Restart emits the per-outer-loop summary line.
func (r *Reporter) Restart(window, finalVolumeDiff int) {
	if r.silent {
		return
	}
	fmt.Fprintf(r.w, "[%s] Restart with window %d complete, volume difference %d\n",
		r.runID, window, finalVolumeDiff)
}

// Summary emits the terminal line: total steps to coalescence and elapsed
// wall-clock time, human-formatted.
func (r *Reporter) Summary(stats cftp.Stats) {
	if r.silent {
		return
	}
	elapsed := time.Since(r.start)
	fmt.Fprintf(r.w, "[%s] %s steps to coalescence in %s (window %s, %d restarts)\n",
		r.runID,
		humanize.Comma(int64(stats.TotalSteps)),
		elapsed.Round(time.Millisecond),
		humanize.Comma(int64(stats.FinalWindow)),
		stats.Restarts)
}
