package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Library errors. All of them are terminal for the run.
var (
	// ErrNoDecks means the deck directory exists but holds no deck files.
	ErrNoDecks = errors.New("no decks found")

	// ErrDeckNotFound means the requested deck is neither a readable file
	// path nor a name in the deck directory.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrUnwritableDir means the deck directory could not be created.
	ErrUnwritableDir = errors.New("cannot create deck directory")
)

// Library locates deck files in the user's data directory,
// $XDG_DATA_HOME/flash or ~/.local/share/flash.
type Library struct {
	dir string
}

// OpenLibrary resolves the deck directory and creates it if absent.
func OpenLibrary() (*Library, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return OpenLibraryAt(filepath.Join(base, "flash"))
}

// OpenLibraryAt opens a library rooted at an explicit directory, creating it
// if needed.
func OpenLibraryAt(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnwritableDir, dir, err)
	}
	return &Library{dir: dir}, nil
}

// Dir returns the library's deck directory.
func (l *Library) Dir() string {
	return l.dir
}

// Decks lists the deck names available in the library, sorted.
func (l *Library) Decks() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(l.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan deck directory: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDecks, l.dir)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, deckName(m))
	}
	sort.Strings(names)
	return names, nil
}

// Resolve maps a deck argument to a file path and display name. The argument
// may be a path to a deck file anywhere on disk, or the name of a deck in the
// library (with or without the .yaml extension).
func (l *Library) Resolve(arg string) (path, name string, err error) {
	if abs, absErr := filepath.Abs(arg); absErr == nil {
		if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
			return abs, deckName(abs), nil
		}
	}

	name = deckName(arg)
	path = filepath.Join(l.dir, name+".yaml")
	if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
		return path, name, nil
	}
	return "", "", fmt.Errorf("%w: %s", ErrDeckNotFound, arg)
}

// deckName strips the directory and extension from a deck path or argument.
func deckName(s string) string {
	base := filepath.Base(s)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
