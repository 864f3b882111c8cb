package lenstables

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"lenswiki/lib/scrapers/voigtlander"
	"lenswiki/lib/wikitext"
)

const website = "Cosina Voigtländer"

const tableOpen = `{| class="wikitable sortable" style="font-size:100%;text-align:center;"`

var headerRow = strings.Join([]string{
	"! " + wikitext.Link("Focal length") + " (mm)",
	wikitext.Link("F-number"),
	"Min. focus",
	"Name",
	"Lens const.",
	wikitext.LinkTitled("Diaphragm (optics)", "Aperture blades"),
	"Dimensions (Diam.×Length)",
	"Weight",
	wikitext.LinkTitled("Photographic filter#Filter sizes and mountings", "Filter size"),
	`class="unsortable" | Ref.`,
}, " !! ")

var asphAbbreviation = wikitext.LinkTitled("aspheric lens", "Asph.")

var focalNumberPattern = regexp.MustCompile(`[\d.]+`)

// focalSortValue pulls the first numeric token out of a rendered focal
// length cell. The data-sort-value attribute precedes the display text,
// so a crop sensor lens sorts by its full frame equivalent. Lenses whose
// focal length never parsed sort to the top rather than failing the run.
func focalSortValue(lens voigtlander.Lens) float64 {
	token := focalNumberPattern.FindString(lens.FocalLength)
	if token == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func compareLenses(a voigtlander.Lens, b voigtlander.Lens) int {
	av, bv := focalSortValue(a), focalSortValue(b)
	if av < bv {
		return -1
	}
	if av > bv {
		return 1
	}
	return 0
}

// renderTable lays out one mount as a sortable wikitable. Lenses are
// ordered by ascending focal length, ties keep their page order.
func renderTable(table MountTable, accessDate string) string {
	lenses := slices.Clone(table.Lenses)
	slices.SortStableFunc(lenses, compareLenses)

	caption := wikitext.Citation{
		Url:        table.Mount.Href,
		Title:      table.Mount.Name + " Lenses",
		Website:    website,
		AccessDate: accessDate,
	}

	var out strings.Builder
	out.WriteString(tableOpen)
	out.WriteString("\n|+ Cosina Voigtländer lenses for ")
	out.WriteString(wikitext.Link(table.Mount.Name))
	out.WriteString(caption.CaptionRef())
	out.WriteString("\n")
	out.WriteString(headerRow)
	out.WriteString("\n")

	for _, lens := range lenses {
		reference := wikitext.Citation{
			Url:        lens.Reference,
			Title:      lens.Name,
			Website:    website,
			AccessDate: accessDate,
		}

		out.WriteString("|-\n")
		cells := []string{
			lens.FocalLength,
			lens.FNumber,
			lens.MinFocus,
			strings.ReplaceAll(lens.Name, "Aspherical", asphAbbreviation),
			lens.LensConst,
			lens.ApertureBlades,
			lens.Dimensions,
			lens.Weight,
			lens.FilterSize,
			reference.Ref(),
		}
		for _, cell := range cells {
			out.WriteString("| ")
			out.WriteString(cell)
			out.WriteString("\n")
		}
	}

	out.WriteString("|}")
	return out.String()
}
