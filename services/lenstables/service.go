// Package lenstables drives the full scrape: every camera mount on
// the homepage, every lens under each mount, one rendered wikitext
// table per mount written to the output in discovery order.
package lenstables

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"lenswiki/lib/scrapers/voigtlander"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lenswiki.services.lenstables")

type Service struct {
	client     *voigtlander.Client
	out        io.Writer
	accessDate string
}

// NewService wires an output writer to a site client. accessDate is
// stamped into every citation of the run.
func NewService(client *voigtlander.Client, out io.Writer, accessDate string) Service {
	return Service{
		client:     client,
		out:        out,
		accessDate: accessDate,
	}
}

// MountTable is the scraped contents of one mount, ready to render.
type MountTable struct {
	Mount  voigtlander.Mount
	Lenses []voigtlander.Lens
}

// CrawlMount scrapes every lens page under a mount, one page at a
// time. Pages come back in link order, sorting happens at render
// time. Any failed page aborts the whole mount.
func (s Service) CrawlMount(ctx context.Context, mount voigtlander.Mount) (MountTable, error) {
	ctx, span := tracer.Start(ctx, "service:CrawlMount")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "mount",
		Value: attribute.StringValue(mount.Name),
	})

	links, err := s.client.LensLinks(ctx, mount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list lens pages")
		return MountTable{}, err
	}

	slog.InfoContext(ctx, "scraping mount", "name", mount.Name, "lenses", len(links))

	lenses := make([]voigtlander.Lens, 0, len(links))
	for _, href := range links {
		slog.DebugContext(ctx, "scraping lens", "url", href)
		lens, err := s.client.Lens(ctx, href)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to scrape lens")
			return MountTable{}, err
		}
		lenses = append(lenses, lens)
	}

	return MountTable{Mount: mount, Lenses: lenses}, nil
}

// Run crawls every mount and writes its table. Mounts keep their
// homepage order, a mount without lenses still gets its table header.
func (s Service) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "service:Run")
	defer span.End()

	mounts, err := s.client.Mounts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list mounts")
		return err
	}
	slog.InfoContext(ctx, "discovered mounts", "count", len(mounts))

	for _, mount := range mounts {
		table, err := s.CrawlMount(ctx, mount)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.out, renderTable(table, s.accessDate))
		if err != nil {
			return fmt.Errorf("failed to write table for %s: %w", mount.Name, err)
		}
	}

	return nil
}
