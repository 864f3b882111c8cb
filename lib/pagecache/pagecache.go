package pagecache

import (
	"crypto/md5"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrNotCached = fs.ErrNotExist

// Store keeps raw page bodies on disk, one file per url.
// Entries are written once and never expire, a rerun of the
// scraper reuses whatever was fetched before.
type Store struct {
	dir string
}

func New(dir string) (Store, error) {
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return Store{}, err
	}
	return Store{dir: dir}, nil
}

// Key derives the cache filename for a url.
func Key(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:]) + ".html"
}

func (s Store) path(url string) string {
	return filepath.Join(s.dir, Key(url))
}

// Get returns the cached body for a url, or an error matching
// ErrNotCached when the url has not been fetched yet.
func (s Store) Get(url string) ([]byte, error) {
	return os.ReadFile(s.path(url))
}

func (s Store) Put(url string, contents []byte) error {
	return os.WriteFile(s.path(url), contents, 0600)
}
