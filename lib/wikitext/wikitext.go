// Package wikitext renders the MediaWiki template markup used by
// the lens tables: unit conversions, f-numbers, internal links and
// citation footnotes.
package wikitext

import "strings"

// Convert renders a {{cvt}} template. values are emitted in order
// between the template name and the unit, so callers can interleave
// separators like "×" for dimension pairs.
func Convert(unit string, values ...string) string {
	return "{{cvt|" + strings.Join(values, "|") + "|" + unit + "}}"
}

// FNumber renders an {{f/}} template for a bare numeric f-stop.
func FNumber(value string) string {
	return "{{f/|" + value + "}}"
}

// Link renders an internal wiki link.
func Link(target string) string {
	return "[[" + target + "]]"
}

// LinkTitled renders an internal wiki link displayed under a
// different title.
func LinkTitled(target, title string) string {
	return "[[" + target + "|" + title + "]]"
}

type Citation struct {
	Url        string
	Title      string
	Website    string
	AccessDate string
}

// Ref renders the compact {{cite web}} footnote used in table rows.
func (c Citation) Ref() string {
	return "<ref>{{cite web|url=" + c.Url +
		"|title=" + c.Title +
		"|website=" + c.Website +
		"|access-date=" + c.AccessDate + "}}</ref>"
}

// CaptionRef renders the spaced {{Cite web}} footnote used in table
// captions. The spelling and parameter order differ from Ref, both
// forms are part of the output format.
func (c Citation) CaptionRef() string {
	return "<ref>{{Cite web |url=" + c.Url +
		" |title=" + c.Title +
		" |access-date=" + c.AccessDate +
		"|website=" + c.Website + "}}</ref>"
}
