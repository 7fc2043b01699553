// SPDX-License-Identifier: AGPL-3.0-or-later

// Package verify implements the naming checks a media server expects movie
// and TV libraries to satisfy. The movie checks run in a fixed order and
// stop at the first violation; the episode checks all run and their
// failures accumulate. Both report through a shared Report.
package verify

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/medialint/medialint/internal/mediapath"
)

// Checker validates file and folder names. It never modifies the library;
// the filesystem is only read when episode checks list sibling files.
type Checker struct {
	fs  afero.Fs
	rep *Report
}

// NewChecker creates a Checker reporting to rep and reading through fs.
func NewChecker(fs afero.Fs, rep *Report) *Checker {
	return &Checker{fs: fs, rep: rep}
}

// extrasFolders are subdirectory names whose contents are bonus material and
// exempt from the movie naming rules.
var extrasFolders = []string{
	"Behind The Scenes",
	"Deleted Scenes",
	"Featurettes",
	"Interviews",
	"Scenes",
	"Shorts",
	"Trailers",
	"Other",
}

// extrasSuffixes mark inline bonus material stored next to the movie file.
var extrasSuffixes = []string{
	"-behindthescenes",
	"-deleted",
	"-featurette",
	"-interview",
	"-scene",
	"-short",
	"-trailer",
	"-other",
}

var (
	movieCoreRe   = regexp.MustCompile(`^(.+?) \((\d{4})\)(.*)$`)
	fourDigitsRe  = regexp.MustCompile(`^\d{4}$`)
	splitPartRe   = regexp.MustCompile(`(?i)^- (cd|disc|disk|dvd|part|pt)\d+$`)
	splitSuffixRe = regexp.MustCompile(`(?i)\s*- (cd|disc|disk|dvd|part|pt)\d+\s*$`)
)

// VerifyMovie checks a movie file against the folder-naming, tag-consistency
// and title/year grammar rules. Checks run in order and the first failure
// reports one diagnostic and returns false, so at most one rule fires per
// call (the final bracket-tag check may report once per offending token).
func (c *Checker) VerifyMovie(path, libraryRoot string) bool {
	folder := mediapath.ParentName(path)

	// Bonus material is exempt, both by subdirectory and by file suffix.
	strippedFolder := strings.TrimSpace(mediapath.StripBrackets(folder))
	for _, name := range extrasFolders {
		if strings.EqualFold(strippedFolder, name) {
			return true
		}
	}
	base := mediapath.BaseName(path)
	lowerBase := strings.ToLower(base)
	for _, suffix := range extrasSuffixes {
		if strings.HasSuffix(lowerBase, suffix) {
			return true
		}
	}

	// Files directly in the library root have no movie folder to agree with.
	inRoot := mediapath.SamePath(mediapath.ParentDir(path), libraryRoot)

	if !inRoot {
		for _, tag := range mediapath.BraceTags(base) {
			if !strings.Contains(folder, tag) {
				c.rep.Addf(path, "Tag '%s' in file name is missing from folder name '%s'", tag, folder)
				return false
			}
		}
		for _, tag := range mediapath.BraceTags(folder) {
			if !strings.Contains(base, tag) {
				c.rep.Addf(path, "Tag '%s' in folder name '%s' is missing from file name", tag, folder)
				return false
			}
		}
	}

	cleaned := mediapath.StripBrackets(mediapath.StripBraces(base))
	m := movieCoreRe.FindStringSubmatch(cleaned)
	if m == nil {
		c.rep.Addf(path, "File name does not match the expected 'Title (Year)' format")
		return false
	}
	title := strings.TrimSpace(m[1])
	year := m[2]
	trailing := strings.TrimSpace(m[3])

	if title == "" {
		c.rep.Addf(path, "Missing or malformed title")
		return false
	}
	if !fourDigitsRe.MatchString(year) {
		c.rep.Addf(path, "Year '%s' is not a four digit number", year)
		return false
	}

	if trailing != "" {
		if !strings.HasPrefix(trailing, "-") {
			c.rep.Addf(path, "Unexpected text '%s' after the year", trailing)
			return false
		}
		if !splitPartRe.MatchString(trailing) {
			c.rep.Addf(path, "Invalid split part '%s'; expected '- cd1', '- disc1', '- disk1', '- dvd1', '- part1' or '- pt1'", trailing)
			return false
		}
	}

	y, _ := strconv.Atoi(year)
	maxYear := time.Now().Year() + 1
	if y < 1900 || y > maxYear {
		c.rep.Addf(path, "Year %d is outside the allowed range 1900-%d", y, maxYear)
		return false
	}

	if !inRoot {
		fileForm := mediapath.StripEdition(mediapath.StripBrackets(base))
		fileForm = splitSuffixRe.ReplaceAllString(fileForm, "")
		folderForm := mediapath.StripEdition(mediapath.StripBrackets(folder))
		if !strings.EqualFold(strings.TrimSpace(folderForm), strings.TrimSpace(fileForm)) {
			c.rep.Addf(path, "Folder name '%s' does not match file name '%s'", folder, base)
			return false
		}
	}

	return c.CheckBracketTags(path)
}
