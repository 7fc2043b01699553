// SPDX-License-Identifier: AGPL-3.0-or-later

package verify

import (
	"fmt"
	"io"
)

// Diagnostic describes one naming-rule violation found on a path. The path
// is the file being checked; the message may be about that file's own name
// or about one of its parent folders.
type Diagnostic struct {
	Path    string
	Message string
}

// Report collects diagnostics in the order the checks emit them and mirrors
// each one as a line on the shared output writer, so the console sees
// findings as they happen while callers can still inspect them as data.
type Report struct {
	w     io.Writer
	diags []Diagnostic
}

// NewReport creates a Report writing to w. A nil w collects only.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Addf records a diagnostic for path and writes it to the output writer.
func (r *Report) Addf(path, format string, args ...any) {
	d := Diagnostic{Path: path, Message: fmt.Sprintf(format, args...)}
	r.diags = append(r.diags, d)
	if r.w != nil {
		fmt.Fprintf(r.w, "%s: %s\n", d.Path, d.Message)
	}
}

// Diagnostics returns the recorded diagnostics in emission order.
func (r *Report) Diagnostics() []Diagnostic {
	return r.diags
}

// Len returns the number of recorded diagnostics.
func (r *Report) Len() int {
	return len(r.diags)
}
