// SPDX-License-Identifier: AGPL-3.0-or-later

package verify

import (
	"path/filepath"
	"regexp"

	"github.com/medialint/medialint/internal/mediapath"
)

// misplacedTagRe finds bracket-delimited tokens whose prefix marks them as
// metadata the server expects in curly braces instead.
var misplacedTagRe = regexp.MustCompile(`(?i)\[(?:tmdb|tvdb|imdb|edition)-[^\]]*\]`)

// CheckBracketTags inspects the final segment of path for [...] tokens that
// belong in {...} delimiters. Every offending token is reported; the return
// value is false if at least one was found.
func (c *Checker) CheckBracketTags(path string) bool {
	segment := mediapath.FileName(path)
	kind := "folder"
	if filepath.Ext(segment) != "" {
		kind = "file"
	}
	ok := true
	for _, tok := range misplacedTagRe.FindAllString(segment, -1) {
		c.rep.Addf(path, "Tag '%s' in %s should probably be in {...}", tok, kind)
		ok = false
	}
	return ok
}
