package manifest

import (
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/mung"
)

// Discover yields the manifest files named by inputs, in order.
//
// A file input is yielded as given, whatever its extension. A directory
// input is walked breadth-first, entries sorted by name, and only files
// with a manifest extension are yielded. An input that cannot be read is
// yielded with an [ErrReadManifest] error and discovery continues with the
// next path.
func Discover(inputs ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, in := range inputs {
			info, err := os.Stat(in)
			if err != nil {
				if !yield(in, readError(in, err)) {
					return
				}

				continue
			}

			if !info.IsDir() {
				if !yield(in, nil) {
					return
				}

				continue
			}

			if !walk(in, yield) {
				return
			}
		}
	}
}

// walk visits root breadth-first. It returns false once yield does.
func walk(root string, yield func(string, error) bool) bool {
	queue := []string{root}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		// ReadDir returns entries sorted by file name.
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !yield(dir, readError(dir, err)) {
				return false
			}

			continue
		}

		for _, e := range entries {
			path := filepath.Join(dir, e.Name())

			switch {
			case e.IsDir():
				queue = append(queue, path)
			case IsManifest(path):
				if !yield(path, nil) {
					return false
				}
			}
		}
	}

	return true
}

func readError(path string, err error) error {
	return ErrReadManifest.Wrap(err).With(slog.String("manifest", path))
}

// SearchPath returns inputs followed by the entries of env, a list of paths
// joined by [os.PathListSeparator] such as the value of an environment
// variable. Empty entries are dropped.
func SearchPath(env string, inputs ...string) []string {
	list := mung.Make(
		mung.WithSubjectItems(env),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(inputs...),
		mung.WithFilter(func(s string) bool { return strings.TrimSpace(s) != "" }),
	).String()

	if list == "" {
		return nil
	}

	return strings.Split(list, string(os.PathListSeparator))
}
