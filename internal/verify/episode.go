// SPDX-License-Identifier: AGPL-3.0-or-later

package verify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/medialint/medialint/internal/mediapath"
)

// ShowType distinguishes the two episode-naming conventions a season folder
// can follow.
type ShowType int

const (
	SeasonBased ShowType = iota
	DateBased
)

func (t ShowType) String() string {
	if t == DateBased {
		return "date-based"
	}
	return "season-based"
}

var (
	// siblingDateRe decides show type: any sibling carrying a dash-separated
	// date group makes the whole season date-based.
	siblingDateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{2}-\d{2}-\d{4}`)

	// showFolderRe is deliberately permissive: the leading name group soaks
	// up almost anything, so only empty names and a narrow band of
	// almost-year/id suffixes fail it. Kept loose to match what the server
	// itself accepts.
	showFolderRe = regexp.MustCompile(`^(.+?)( \(\d{4}\))?( \{(tmdb|tvdb|imdb)-\d+\})?$`)

	seasonFolderRe = regexp.MustCompile(`(?i)^Season \d+$`)
	seasonNumberRe = regexp.MustCompile(`(?i)Season (\d+)`)

	// Each date separator is independently '-', '.' or space, so mixed
	// separators within one date are accepted.
	dateEpisodeRe = regexp.MustCompile(`^.+ - (\d{4}[-. ]\d{2}[-. ]\d{2}|\d{2}[-. ]\d{2}[-. ]\d{4})( - .*)?$`)

	episodeMarkerRe = regexp.MustCompile(`(?i)S(\d{1,4})E\d{1,4}`)

	// The two multi-episode patterns use different digit counts. That
	// mirrors the rule set as shipped; do not unify them.
	multiEpisodeRe      = regexp.MustCompile(`(?i)-E\d{2}`)
	multiEpisodeAfterRe = regexp.MustCompile(`(?i)^-E\d{4}`)
)

// VerifyEpisode checks a TV episode file against the show-folder,
// season-folder and episode-filename rules. Unlike VerifyMovie, every check
// runs and every failure is reported; the result is the AND of all of them.
// Only a missing parent or grandparent folder stops the evaluation early.
func (c *Checker) VerifyEpisode(path string) bool {
	base := mediapath.BaseName(path)
	if strings.HasSuffix(strings.ToLower(base), "-featurette") {
		return true
	}

	seasonDir := mediapath.ParentDir(path)
	if !mediapath.HasParentDir(path) || !mediapath.HasParentDir(seasonDir) {
		c.rep.Addf(path, "File must be inside a show folder and a season folder")
		return false
	}
	showDir := mediapath.GrandparentDir(path)

	showType, err := c.detectShowType(seasonDir)
	if err != nil {
		c.rep.Addf(path, "Could not inspect season folder '%s': %v", seasonDir, err)
		return false
	}

	ok := true

	showName := mediapath.FileName(showDir)
	if !showFolderRe.MatchString(showName) {
		c.rep.Addf(path, "Show folder '%s' does not match the expected 'Show Name (2020) {tmdb-12345}' format", showName)
		ok = false
	}

	seasonName := mediapath.FileName(seasonDir)
	if !seasonFolderRe.MatchString(seasonName) && !strings.EqualFold(seasonName, "Specials") {
		c.rep.Addf(path, "Season folder '%s' must be named 'Season <number>' or 'Specials'", seasonName)
		ok = false
	}

	fileSeason := -1
	if showType == DateBased {
		if !dateEpisodeRe.MatchString(base) {
			c.rep.Addf(path, "File name does not match the expected 'Show - YYYY-MM-DD - Title' date format")
			ok = false
		}
	} else {
		loc := episodeMarkerRe.FindStringSubmatchIndex(base)
		if loc == nil {
			c.rep.Addf(path, "File name is missing an episode marker like S01E01")
			ok = false
		} else {
			fileSeason, _ = strconv.Atoi(base[loc[2]:loc[3]])
			if strings.Contains(base, "-") && !multiEpisodeRe.MatchString(base) {
				after := base[loc[1]:]
				if strings.HasPrefix(after, "-") && !multiEpisodeAfterRe.MatchString(after) {
					c.rep.Addf(path, "Invalid multi-episode format after '%s'", base[loc[0]:loc[1]])
					ok = false
				}
			}
		}
	}

	if !c.CheckBracketTags(path) {
		ok = false
	}

	if showType == SeasonBased && fileSeason >= 0 {
		if !c.checkSeasonConsistency(path, fileSeason, seasonName) {
			ok = false
		}
	}

	return ok
}

// detectShowType lists the sibling files in the season folder; a single
// dated sibling makes the season date-based. The listing is repeated for
// every file checked, so a season mixing conventions is judged the same way
// each time.
func (c *Checker) detectShowType(seasonDir string) (ShowType, error) {
	entries, err := afero.ReadDir(c.fs, seasonDir)
	if err != nil {
		return SeasonBased, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if siblingDateRe.MatchString(mediapath.BaseName(entry.Name())) {
			return DateBased, nil
		}
	}
	return SeasonBased, nil
}

// checkSeasonConsistency compares the season number in the episode marker
// with the season folder's name.
func (c *Checker) checkSeasonConsistency(path string, fileSeason int, seasonName string) bool {
	if strings.EqualFold(seasonName, "Specials") {
		if fileSeason != 0 {
			c.rep.Addf(path, "Episode is season %d but sits in the 'Specials' folder (expected season 0)", fileSeason)
			return false
		}
		return true
	}
	if fileSeason == 0 {
		if strings.EqualFold(seasonName, "Season 0") || strings.EqualFold(seasonName, "Season 00") {
			return true
		}
		c.rep.Addf(path, "Season 0 episode must sit in 'Season 0', 'Season 00' or 'Specials', not '%s'", seasonName)
		return false
	}
	m := seasonNumberRe.FindStringSubmatch(seasonName)
	if m == nil {
		c.rep.Addf(path, "Episode is season %d but the folder '%s' has no season number", fileSeason, seasonName)
		return false
	}
	folderSeason, _ := strconv.Atoi(m[1])
	if folderSeason != fileSeason {
		c.rep.Addf(path, "Episode is season %d but sits in folder '%s' (season %d)", fileSeason, seasonName, folderSeason)
		return false
	}
	return true
}
