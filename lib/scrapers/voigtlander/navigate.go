package voigtlander

import (
	"context"
	"log/slog"
	"strings"

	"lenswiki/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Mount is one camera mount family discovered on the homepage.
type Mount struct {
	Name string
	Href string
}

func firstText(sel *goquery.Selection) (string, bool) {
	if len(sel.Nodes) == 0 {
		return "", false
	}
	return htmlutil.GetText(sel.Nodes[0]), true
}

// Mounts lists the camera mount families in homepage order. The
// display name is the identity of a mount, a repeated name keeps its
// first position but takes the newer url. The accessory category is
// not a mount and is skipped.
func (c *Client) Mounts(ctx context.Context) ([]Mount, error) {
	ctx, span := tracer.Start(ctx, "client:Mounts")
	defer span.End()

	doc, err := c.document(ctx, c.BaseUrl.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch homepage")
		return nil, err
	}

	var mounts []Mount
	index := map[string]int{}
	doc.Find("li.voi-type__item a.voi-type__item-link").Each(func(_ int, item *goquery.Selection) {
		href := item.AttrOr("href", "")
		name, ok := firstText(item.Find(".voi-type__item-name"))
		if !ok {
			return
		}
		name = strings.TrimSpace(name)
		if href == "" || name == "" || name == "ACCESSORIES" {
			return
		}

		slog.DebugContext(ctx, "discovered mount", "name", name, "url", href)
		if i, seen := index[name]; seen {
			mounts[i].Href = href
			return
		}
		index[name] = len(mounts)
		mounts = append(mounts, Mount{Name: name, Href: href})
	})

	span.SetAttributes(attribute.KeyValue{
		Key:   "count",
		Value: attribute.IntValue(len(mounts)),
	})
	return mounts, nil
}

// LensLinks lists the product pages reachable from a mount page, in
// document order with duplicates removed. Only links under the mount
// url count, the mount page linking to itself does not.
func (c *Client) LensLinks(ctx context.Context, mount Mount) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:LensLinks")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "url",
		Value: attribute.StringValue(mount.Href),
	})

	doc, err := c.document(ctx, mount.Href)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch mount page")
		return nil, err
	}

	mountRoot := strings.TrimRight(mount.Href, "/")

	var links []string
	seen := map[string]bool{}
	doc.Find(`a[href*="voigtlander"]`).Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !strings.HasPrefix(href, mount.Href) {
			return
		}
		if strings.TrimRight(href, "/") == mountRoot {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})

	span.SetAttributes(attribute.KeyValue{
		Key:   "count",
		Value: attribute.IntValue(len(links)),
	})
	return links, nil
}
