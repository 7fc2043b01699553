// Package mediapath decomposes media library paths into the structural
// parts the naming checks operate on: file name, extension-stripped base
// name, immediate parent folder, grandparent folder. It also knows how to
// strip the bracket/brace metadata tags that media servers embed in names.
package mediapath

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	bracketTagRe = regexp.MustCompile(`\[[^\]]*\]`)
	braceTagRe   = regexp.MustCompile(`\{[^}]*\}`)
	editionTagRe = regexp.MustCompile(`(?i)\{edition-[^}]*\}`)
)

// FileName returns the final segment of path.
func FileName(path string) string {
	return filepath.Base(path)
}

// BaseName returns the final segment of path with its extension removed.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ParentName returns the name of the immediate parent folder.
func ParentName(path string) string {
	return filepath.Base(filepath.Dir(path))
}

// ParentDir returns the path of the immediate parent folder.
func ParentDir(path string) string {
	return filepath.Dir(path)
}

// GrandparentDir returns the path of the parent folder's parent.
func GrandparentDir(path string) string {
	return filepath.Dir(filepath.Dir(path))
}

// HasParentDir reports whether path sits inside a named directory, as
// opposed to being a bare name or a direct child of the filesystem root.
func HasParentDir(path string) bool {
	dir := filepath.Dir(path)
	return dir != "." && dir != path && dir != string(filepath.Separator)
}

// SamePath reports whether two directory paths refer to the same location,
// ignoring case and trailing separators. Relative paths are resolved against
// the working directory before comparison.
func SamePath(a, b string) bool {
	return strings.EqualFold(normalize(a), normalize(b))
}

func normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if abs != string(filepath.Separator) {
		abs = strings.TrimRight(abs, string(filepath.Separator))
	}
	return abs
}

// StripBrackets removes every [...] token from name.
func StripBrackets(name string) string {
	return bracketTagRe.ReplaceAllString(name, "")
}

// StripBraces removes every {...} token from name.
func StripBraces(name string) string {
	return braceTagRe.ReplaceAllString(name, "")
}

// StripEdition removes every {edition-...} token from name.
func StripEdition(name string) string {
	return editionTagRe.ReplaceAllString(name, "")
}

// BraceTags returns the {...} tokens in name, excluding {edition-...}
// tokens, in order of appearance.
func BraceTags(name string) []string {
	var tags []string
	for _, tok := range braceTagRe.FindAllString(name, -1) {
		if strings.HasPrefix(strings.ToLower(tok), "{edition-") {
			continue
		}
		tags = append(tags, tok)
	}
	return tags
}
