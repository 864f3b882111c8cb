package voigtlander

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lenswiki/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseUrl string) *Client {
	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl:  baseUrl,
		CacheDir: t.TempDir(),
	})
	require.NoError(t, err)
	return client
}

func TestFetchCaching(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/voigtlander")()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, "<html><body>lineup</body></html>")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	pageUrl := server.URL + "/voigtlander/vm/"

	first, err := client.fetch(context.Background(), pageUrl)
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	second, err := client.fetch(context.Background(), pageUrl)
	require.NoError(t, err)
	require.Equal(t, 1, hits)
	require.Equal(t, first, second)
}

func TestFetchStatusError(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/voigtlander")()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	pageUrl := server.URL + "/voigtlander/gone/"

	_, err := client.fetch(context.Background(), pageUrl)
	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, http.StatusNotFound, ferr.StatusCode)
	require.Equal(t, pageUrl, ferr.Url)

	// failed responses are not cached
	_, err = client.fetch(context.Background(), pageUrl)
	require.Error(t, err)
	require.Equal(t, 2, hits)
}

func TestFetchTransportError(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/voigtlander")()

	server := httptest.NewServer(http.NotFoundHandler())
	pageUrl := server.URL + "/voigtlander/"
	server.Close()

	client := newTestClient(t, pageUrl)
	_, err := client.fetch(context.Background(), pageUrl)
	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	require.Error(t, ferr.Err)
	require.Zero(t, ferr.StatusCode)
}

func TestFetchErrorMessage(t *testing.T) {
	cases := []struct {
		err      *FetchError
		expected string
	}{
		{&FetchError{Url: "https://example.com/", StatusCode: 404}, "fetch https://example.com/: unexpected status 404"},
		{&FetchError{Url: "https://example.com/", Err: errors.New("connection refused")}, "fetch https://example.com/: connection refused"},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, c.err.Error())
	}
}

func TestMounts(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/voigtlander")()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/voigtlander/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<body>
<ul class="voi-type">
<li class="voi-type__item"><a class="voi-type__item-link" href="%[1]s/voigtlander/vm/"><span class="voi-type__item-name">VM</span></a></li>
<li class="voi-type__item"><a class="voi-type__item-link" href="%[1]s/voigtlander/accessory/"><span class="voi-type__item-name">ACCESSORIES</span></a></li>
<li class="voi-type__item"><a class="voi-type__item-link" href="%[1]s/voigtlander/e/"><span class="voi-type__item-name">E</span></a></li>
<li class="voi-type__item"><a class="voi-type__item-link" href="%[1]s/voigtlander/vm-ii/"><span class="voi-type__item-name">VM</span></a></li>
<li class="voi-type__item"><a class="voi-type__item-link" href="%[1]s/voigtlander/none/"></a></li>
</ul>
</body>
</html>`, server.URL)
	})

	client := newTestClient(t, server.URL+"/voigtlander/")
	mounts, err := client.Mounts(context.Background())
	require.NoError(t, err)

	expected := []Mount{
		// the repeated VM entry keeps its position but takes the newer url
		{Name: "VM", Href: server.URL + "/voigtlander/vm-ii/"},
		{Name: "E", Href: server.URL + "/voigtlander/e/"},
	}
	require.Empty(t, cmp.Diff(expected, mounts))
}

func TestLensLinks(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/voigtlander")()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/voigtlander/vm", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<body>
<a href="%[1]s/voigtlander/vm/nokton50/">NOKTON 50mm</a>
<a href="%[1]s/voigtlander/vm/">lineup</a>
<a href="%[1]s/voigtlander/vm/nokton50/">NOKTON 50mm again</a>
<a href="%[1]s/voigtlander/e/apo50/">APO-LANTHAR 50mm</a>
<a href="https://example.com/elsewhere">unrelated</a>
<a href="%[1]s/voigtlander/vm/heliar40/">HELIAR 40mm</a>
</body>
</html>`, server.URL)
	})

	client := newTestClient(t, server.URL+"/voigtlander/")
	links, err := client.LensLinks(context.Background(), Mount{
		Name: "VM",
		Href: server.URL + "/voigtlander/vm",
	})
	require.NoError(t, err)

	expected := []string{
		server.URL + "/voigtlander/vm/nokton50/",
		server.URL + "/voigtlander/vm/heliar40/",
	}
	require.Empty(t, cmp.Diff(expected, links))
}
