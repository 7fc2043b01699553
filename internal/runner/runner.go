// SPDX-License-Identifier: AGPL-3.0-or-later

// Package runner drives a verification run: it picks the content type,
// dispatches each enumerated file to the matching verifier and aggregates
// pass/fail counts. Results are report content only; nothing is persisted
// between runs.
package runner

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/medialint/medialint/internal/verify"
)

// ContentType selects which rule set a run applies. It is chosen once per
// run, never per file.
type ContentType int

const (
	Auto ContentType = iota
	Movie
	Episodic
)

func (t ContentType) String() string {
	switch t {
	case Movie:
		return "movie"
	case Episodic:
		return "tv"
	default:
		return "auto"
	}
}

// ParseContentType maps a user-supplied type name to a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "movie", "movies":
		return Movie, nil
	case "tv", "show", "shows", "episodic":
		return Episodic, nil
	}
	return Auto, fmt.Errorf("unknown content type %q (want movie, tv or auto)", s)
}

var markerRe = regexp.MustCompile(`(?i)S\d{1,4}E\d{1,4}`)

// Detect samples the enumerated file names for SxxEyy episode markers; any
// hit makes the library episodic, otherwise it is treated as movies.
func Detect(files []string) ContentType {
	for _, f := range files {
		if markerRe.MatchString(filepath.Base(f)) {
			return Episodic
		}
	}
	return Movie
}

// Stats counts outcomes across one run.
type Stats struct {
	Checked int
	Passed  int
	Failed  int
}

// Runner validates files one at a time in enumeration order.
type Runner struct {
	fs  afero.Fs
	log zerolog.Logger
	out io.Writer
}

// New creates a Runner. out is the shared reporting surface: the verifiers
// write their diagnostics to it and Run appends the final summary.
func New(fs afero.Fs, log zerolog.Logger, out io.Writer) *Runner {
	return &Runner{fs: fs, log: log, out: out}
}

// Run validates every file against the rule set for ct and returns the
// aggregate counts plus the collected diagnostics. Individual failures never
// abort the run.
func (r *Runner) Run(root string, files []string, ct ContentType) (Stats, *verify.Report) {
	if ct == Auto {
		ct = Detect(files)
		r.log.Info().Str("type", ct.String()).Msg("detected content type")
	}

	rep := verify.NewReport(r.out)
	chk := verify.NewChecker(r.fs, rep)

	var stats Stats
	for _, f := range files {
		var ok bool
		if ct == Episodic {
			ok = chk.VerifyEpisode(f)
		} else {
			ok = chk.VerifyMovie(f, root)
		}
		stats.Checked++
		if ok {
			stats.Passed++
		} else {
			stats.Failed++
		}
		r.log.Debug().Str("file", f).Bool("ok", ok).Msg("checked")
	}

	fmt.Fprintf(r.out, "Checked %d files: %d passed, %d failed\n", stats.Checked, stats.Passed, stats.Failed)
	return stats, rep
}
