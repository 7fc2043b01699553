package verify

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seasonFixture builds a Checker whose filesystem contains the given files,
// so show-type detection sees them as siblings.
func seasonFixture(t *testing.T, files ...string) (*Checker, *Report) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte{}, 0o644))
	}
	rep := NewReport(nil)
	return NewChecker(fs, rep), rep
}

func TestVerifyEpisodeSeasonBased(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		siblings []string
		ok       bool
		messages []string
	}{
		{
			name:     "valid episode",
			path:     "/tv/Show (2020)/Season 01/Show - S01E01.mkv",
			siblings: []string{"/tv/Show (2020)/Season 01/Show - S01E02.mkv"},
			ok:       true,
		},
		{
			name: "single digit marker in padded folder",
			path: "/tv/Show (2020)/Season 01/Show - S1E1.mkv",
			ok:   true,
		},
		{
			name: "multi-episode marker",
			path: "/tv/Show (2020)/Season 01/Show - S01E01-E02.mkv",
			ok:   true,
		},
		{
			name: "bad multi-episode marker",
			path: "/tv/Show (2020)/Season 01/Show - S01E01-E2.mkv",
			ok:   false,
			messages: []string{
				"Invalid multi-episode format after 'S01E01'",
			},
		},
		{
			name: "missing marker",
			path: "/tv/Show (2020)/Season 01/Show Episode One.mkv",
			ok:   false,
			messages: []string{
				"File name is missing an episode marker like S01E01",
			},
		},
		{
			name: "season matches folder",
			path: "/tv/Show (2020)/Season 3/Show - S03E05.mkv",
			ok:   true,
		},
		{
			name: "season mismatch names both values",
			path: "/tv/Show (2020)/Season 4/Show - S03E05.mkv",
			ok:   false,
			messages: []string{
				"Episode is season 3 but sits in folder 'Season 4' (season 4)",
			},
		},
		{
			name: "specials folder with season zero",
			path: "/tv/Show (2020)/Specials/Show - S00E01.mkv",
			ok:   true,
		},
		{
			name: "season zero outside specials",
			path: "/tv/Show (2020)/Season 1/Show - S00E01.mkv",
			ok:   false,
			messages: []string{
				"Season 0 episode must sit in 'Season 0', 'Season 00' or 'Specials', not 'Season 1'",
			},
		},
		{
			name: "season zero in season zero folder",
			path: "/tv/Show (2020)/Season 00/Show - S00E01.mkv",
			ok:   true,
		},
		{
			name: "nonzero season in specials",
			path: "/tv/Show (2020)/Specials/Show - S02E01.mkv",
			ok:   false,
			messages: []string{
				"Episode is season 2 but sits in the 'Specials' folder (expected season 0)",
			},
		},
		{
			name: "failures aggregate in check order",
			path: "/tv/Show (2020)/DVDs/Show [tmdb-5].mkv",
			ok:   false,
			messages: []string{
				"Season folder 'DVDs' must be named 'Season <number>' or 'Specials'",
				"File name is missing an episode marker like S01E01",
				"Tag '[tmdb-5]' in file should probably be in {...}",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := append([]string{tt.path}, tt.siblings...)
			chk, rep := seasonFixture(t, files...)
			assert.Equal(t, tt.ok, chk.VerifyEpisode(tt.path))
			require.Len(t, rep.Diagnostics(), len(tt.messages))
			for i, d := range rep.Diagnostics() {
				assert.Equal(t, tt.path, d.Path)
				assert.Equal(t, tt.messages[i], d.Message)
			}
		})
	}
}

func TestVerifyEpisodeDateBased(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		siblings []string
		ok       bool
		messages []string
	}{
		{
			name: "year first date",
			path: "/tv/Daily (2020)/Season 2020/Daily - 2020-01-02.mkv",
			ok:   true,
		},
		{
			name: "day first date with title",
			path: "/tv/Daily (2020)/Season 2020/Daily - 12-31-2020 - Finale.mkv",
			ok:   true,
		},
		{
			name:     "mixed separators within one date",
			path:     "/tv/Daily (2020)/Season 2020/Daily - 2020-01.02.mkv",
			siblings: []string{"/tv/Daily (2020)/Season 2020/Daily - 2020-01-03.mkv"},
			ok:       true,
		},
		{
			name:     "season marker in a date-based season",
			path:     "/tv/Daily (2020)/Season 2020/Daily - S01E01.mkv",
			siblings: []string{"/tv/Daily (2020)/Season 2020/Daily - 2020-01-03.mkv"},
			ok:       false,
			messages: []string{
				"File name does not match the expected 'Show - YYYY-MM-DD - Title' date format",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := append([]string{tt.path}, tt.siblings...)
			chk, rep := seasonFixture(t, files...)
			assert.Equal(t, tt.ok, chk.VerifyEpisode(tt.path))
			require.Len(t, rep.Diagnostics(), len(tt.messages))
			for i, d := range rep.Diagnostics() {
				assert.Equal(t, tt.messages[i], d.Message)
			}
		})
	}
}

func TestVerifyEpisodeBypassAndStructure(t *testing.T) {
	t.Run("featurette bypass skips everything", func(t *testing.T) {
		chk, rep := seasonFixture(t)
		assert.True(t, chk.VerifyEpisode("/tv/Show/Whatever/Show-featurette.mkv"))
		assert.Zero(t, rep.Len())
	})

	t.Run("missing grandparent folder", func(t *testing.T) {
		chk, rep := seasonFixture(t, "/Season 1/ep - S01E01.mkv")
		assert.False(t, chk.VerifyEpisode("/Season 1/ep - S01E01.mkv"))
		require.Equal(t, 1, rep.Len())
		assert.Equal(t, "File must be inside a show folder and a season folder", rep.Diagnostics()[0].Message)
	})

	t.Run("bare file name", func(t *testing.T) {
		chk, rep := seasonFixture(t)
		assert.False(t, chk.VerifyEpisode("ep - S01E01.mkv"))
		require.Equal(t, 1, rep.Len())
	})

	t.Run("unreadable season folder fails that file only", func(t *testing.T) {
		chk, rep := seasonFixture(t) // empty fs, season folder does not exist
		assert.False(t, chk.VerifyEpisode("/tv/Show (2020)/Season 01/Show - S01E01.mkv"))
		require.Equal(t, 1, rep.Len())
		assert.Contains(t, rep.Diagnostics()[0].Message, "Could not inspect season folder")
	})
}

func TestVerifyEpisodePermissiveShowFolder(t *testing.T) {
	// The show-folder pattern accepts almost any non-empty name; year and id
	// groups are optional extras.
	paths := []string{
		"/tv/Show/Season 01/Show - S01E01.mkv",
		"/tv/Show (2020)/Season 01/Show - S01E01.mkv",
		"/tv/Show (2020) {tvdb-123}/Season 01/Show - S01E01.mkv",
		"/tv/S0me we!rd f0lder/Season 01/Show - S01E01.mkv",
	}
	for _, path := range paths {
		chk, rep := seasonFixture(t, path)
		assert.True(t, chk.VerifyEpisode(path), path)
		assert.Zero(t, rep.Len(), path)
	}
}

func TestVerifyEpisodeIdempotent(t *testing.T) {
	path := "/tv/Show (2020)/Season 4/Show - S03E05.mkv"

	chk1, rep1 := seasonFixture(t, path)
	chk2, rep2 := seasonFixture(t, path)
	assert.False(t, chk1.VerifyEpisode(path))
	assert.False(t, chk2.VerifyEpisode(path))
	assert.Equal(t, rep1.Diagnostics(), rep2.Diagnostics())
}
