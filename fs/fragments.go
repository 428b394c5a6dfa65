// Package fs provides file-based input and output for technical data.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/techdata"
)

// FragmentExt is the extension of fragment files.
const FragmentExt = ".html"

// ParseFragmentName splits a fragment file name into its order prefix and title.
// Example: 02-engine-and-drive.html → 2, "engine and drive", true
// ok is false when the name has no numeric prefix.
func ParseFragmentName(name string) (order int, title string, ok bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	prefix, rest, found := strings.Cut(base, "-")
	if found {
		if n, err := strconv.Atoi(prefix); err == nil && n >= 0 {
			return n, titleFromName(rest), true
		}
	}

	return 0, titleFromName(base), false
}

func titleFromName(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// LoadFragments reads every fragment file in dir.
// Files with a numeric prefix are ordered by it; the rest follow by name.
func LoadFragments(dir string) ([]techdata.Fragment, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, techdata.Errorf(techdata.ENOTFOUND, "fragment directory %q not found", dir)
	}
	if err != nil {
		return nil, err
	}

	var prefixed, unprefixed []techdata.Fragment
	maxOrder := -1

	// ReadDir returns entries sorted by name.
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), FragmentExt) {
			continue
		}

		markup, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		order, title, ok := ParseFragmentName(entry.Name())
		f := techdata.Fragment{Markup: string(markup), Title: title, Order: order}
		if !ok {
			unprefixed = append(unprefixed, f)
			continue
		}
		maxOrder = max(maxOrder, order)
		prefixed = append(prefixed, f)
	}

	for i := range unprefixed {
		unprefixed[i].Order = maxOrder + 1 + i
	}

	fragments := append(prefixed, unprefixed...)
	if len(fragments) == 0 {
		return nil, techdata.Errorf(techdata.EINVALID, "no %s files in %q", FragmentExt, dir)
	}

	return techdata.SortFragments(fragments), nil
}
