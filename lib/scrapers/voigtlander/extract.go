package voigtlander

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lens is one product page reduced to markup-ready table cells. An
// empty field means the page never listed that specification, the
// renderer shows those as empty cells.
type Lens struct {
	Reference      string
	Name           string
	FocalLength    string
	FNumber        string
	MinFocus       string
	LensConst      string
	ApertureBlades string
	Dimensions     string
	Weight         string
	FilterSize     string
}

// Lens fetches a product page and extracts its specification table.
func (c *Client) Lens(ctx context.Context, href string) (Lens, error) {
	ctx, span := tracer.Start(ctx, "client:Lens")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "url",
		Value: attribute.StringValue(href),
	})

	doc, err := c.document(ctx, href)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch lens page")
		return Lens{}, err
	}

	lens, err := extractLens(doc, href)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract lens")
		return Lens{}, err
	}
	return lens, nil
}

type fieldRule struct {
	label string
	apply func(lens *Lens, value string)
}

// the filter size label is spelled several ways across product
// generations, フィルター appears twice in the site's inventory
var fieldRules = []fieldRule{
	{"焦点距離", func(l *Lens, v string) { l.FocalLength = normalizeFocalLength(v) }},
	{"口径比", func(l *Lens, v string) { l.FNumber = normalizeFNumber(v) }},
	{"最短撮影距離", func(l *Lens, v string) { l.MinFocus = normalizeMeasurement(v, "m") }},
	{"レンズ構成", func(l *Lens, v string) { l.LensConst = normalizeLensConst(v) }},
	{"絞り羽根枚数", func(l *Lens, v string) { l.ApertureBlades = apertureBlades(v) }},
	{"最大径×全長", func(l *Lens, v string) { l.Dimensions = normalizeMeasurement(v, "mm") }},
	{"重量", func(l *Lens, v string) { l.Weight = normalizeMeasurement(v, "g") }},
	{"フィルター", func(l *Lens, v string) { l.FilterSize = filterSize(v) }},
	{"フィルター径", func(l *Lens, v string) { l.FilterSize = filterSize(v) }},
	{"フィルター", func(l *Lens, v string) { l.FilterSize = filterSize(v) }},
	{"フィルターサイズ", func(l *Lens, v string) { l.FilterSize = filterSize(v) }},
}

func extractLens(doc *goquery.Document, href string) (Lens, error) {
	lens := Lens{Reference: href}

	doc.Find(".lens-specification__detail__data .lens-specification__detail__data-unit").
		Each(func(_ int, row *goquery.Selection) {
			label, ok := firstText(row.Find(".lens-specification__detail__data-unitDt"))
			if !ok {
				return
			}
			value, ok := firstText(row.Find(".lens-specification__detail__data-unitDd"))
			if !ok {
				return
			}

			label = strings.TrimSpace(label)
			value = strings.TrimSpace(value)
			for _, rule := range fieldRules {
				if rule.label == label {
					rule.apply(&lens, value)
				}
			}
		})

	category, ok := firstText(doc.Find(".lens-mv__group__category"))
	if !ok {
		return Lens{}, fmt.Errorf("lens page %s: missing product category", href)
	}
	model, ok := firstText(doc.Find(".lens-mv__group__model"))
	if !ok {
		return Lens{}, fmt.Errorf("lens page %s: missing product model", href)
	}
	lens.Name = lensName(category, model)

	return lens, nil
}

var titleCaser = cases.Title(language.Und)

// lensName joins the title-cased series name with whatever follows
// the first two words of the model line (brand and series repeat
// there, the remainder is the focal length / aperture suffix).
func lensName(category, model string) string {
	words := strings.Split(strings.TrimSpace(model), " ")
	suffix := ""
	if len(words) > 2 {
		suffix = strings.Join(words[2:], " ")
	}
	return titleCaser.String(strings.TrimSpace(category)) + " " + suffix
}
