package pagecache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	cases := []struct {
		url      string
		expected string
	}{
		{
			url:      "https://www.cosina.co.jp/voigtlander/",
			expected: "a6decd98273b2f5bc312858dcad95a59.html",
		},
		{
			url:      "https://example.com/lens/nokton",
			expected: "433f5994b7d147ddea8a9dcea9856a29.html",
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, Key(test.url))
	}
}

func TestStore(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	url := "https://example.com/lens/nokton"

	_, err = store.Get(url)
	require.ErrorIs(t, err, ErrNotCached)

	body := []byte("<html><body>nokton</body></html>")
	err = store.Put(url, body)
	if err != nil {
		t.Fatal(err)
	}

	cached, err := store.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, body, cached)

	// a second store over the same directory sees existing entries
	reopened, err := New(store.dir)
	if err != nil {
		t.Fatal(err)
	}
	cached, err = reopened.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, body, cached)
}

func TestStoreMissIsNotFatal(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Get("https://example.com/never-fetched")
	if !errors.Is(err, ErrNotCached) {
		t.Fatal("expected a cache miss, got", err)
	}
}
