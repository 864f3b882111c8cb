package voigtlander

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"net/url"
	"time"

	"lenswiki/lib/pagecache"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultBaseUrl = "https://www.cosina.co.jp/voigtlander/"

// FetchError reports a page that could not be retrieved, either
// because the transport failed or because the site answered with a
// non-2xx status. Fetches are never retried.
type FetchError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Url, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
	cache   pagecache.Store
}

type ClientOptions struct {
	BaseUrl  string
	CacheDir string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.CacheDir == "" {
		opts.CacheDir = "cache"
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	cache, err := pagecache.New(opts.CacheDir)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
		cache:   cache,
	}
	return c, nil
}

// fetch returns the body for a url, going to the network only when
// the page cache has no entry. Cached entries never expire, so a
// rerun over a warm cache makes no requests at all.
func (c *Client) fetch(ctx context.Context, pageUrl string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:fetch")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "url",
		Value: attribute.StringValue(pageUrl),
	})

	cached, err := c.cache.Get(pageUrl)
	if err == nil {
		span.SetStatus(codes.Ok, "CACHE HIT")
		return cached, nil
	}
	if !errors.Is(err, pagecache.ErrNotCached) {
		span.RecordError(err)
		span.AddEvent("CACHE ERROR", trace.WithAttributes(attribute.KeyValue{
			Key:   "log.severity",
			Value: attribute.StringValue("WARN"),
		}))
	}

	slog.DebugContext(ctx, "fetching page", "url", pageUrl)
	res, err := c.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, &FetchError{Url: pageUrl, Err: err}
	}
	if !res.IsSuccess() {
		ferr := &FetchError{Url: pageUrl, StatusCode: res.StatusCode()}
		span.RecordError(ferr)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, ferr
	}

	err = c.cache.Put(pageUrl, res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to cache page")
		slog.WarnContext(ctx, "failed to cache page", "url", pageUrl, "err", err)
	}

	return res.Body(), nil
}

func (c *Client) document(ctx context.Context, pageUrl string) (*goquery.Document, error) {
	body, err := c.fetch(ctx, pageUrl)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(body))
}
