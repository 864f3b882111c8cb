package voigtlander

import (
	"regexp"
	"strconv"
	"strings"

	"lenswiki/lib/wikitext"
)

// Field normalizers rewrite the site's Japanese specification values
// into wikitext. Every normalizer falls back to returning its input
// unchanged when the value does not have the expected shape, a value
// never fails to normalize.

var numberPattern = regexp.MustCompile(`[\d.]+`)
var lensConstPattern = regexp.MustCompile(`^(\d+)群(\d+)枚`)
var fNumberPattern = regexp.MustCompile(`1 ?: ?([\d.]+)`)

// normalizeLensConst turns "8群10枚" (8 groups, 10 elements) into the
// english shorthand "10e/8g".
func normalizeLensConst(value string) string {
	m := lensConstPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[2] + "e/" + m[1] + "g"
}

// normalizeMeasurement wraps the numbers of a measurement in a
// {{cvt}} template. Dimension values keep their × separator between
// the numbers, meters always display a feet conversion.
func normalizeMeasurement(value, unit string) string {
	nums := numberPattern.FindAllString(value, -1)
	if unit == "m" {
		unit = "m|ft"
	}

	if strings.Contains(value, "×") {
		args := make([]string, 0, len(nums)*2)
		for i, n := range nums {
			if i > 0 {
				args = append(args, "×")
			}
			args = append(args, n)
		}
		return wikitext.Convert(unit, args...)
	}
	if len(nums) > 0 {
		return wikitext.Convert(unit, nums[0])
	}
	return value
}

/// normalizeFNumber turns an aperture ratio like "1:1.5" or "1 : 2"
// into an {{f/}} template.
func normalizeFNumber(value string) string {
	m := fNumberPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return wikitext.FNumber(m[1])
}

const fullFrameMarker = "フルサイズ換算:"

// normalizeFocalLength renders the focal length as a sortable header
// cell fragment with a color band per focal range. Crop-sensor lenses
// state a full-frame equivalent in parentheses, that equivalent
// drives both the sort value and the band.
func normalizeFocalLength(value string) string {
	display := strings.ReplaceAll(value, "mm", "")
	display = strings.ReplaceAll(display, "約", "")

	sortValue := display
	sortAttr := ""
	if strings.Contains(display, fullFrameMarker) {
		segment := strings.Split(display, fullFrameMarker)[1]
		runes := []rune(segment)
		if len(runes) > 0 {
			// the equivalent runs up to the closing parenthesis
			sortValue = string(runes[:len(runes)-1])
		} else {
			sortValue = ""
		}
		display = strings.ReplaceAll(display, fullFrameMarker, "full frame equivalent: ")
		sortAttr = `data-sort-value="` + sortValue + `"`
	}

	focal, err := strconv.ParseFloat(strings.TrimSpace(sortValue), 64)
	if err != nil {
		return value
	}

	color := "dfd"
	switch {
	case focal < 21:
		color = "fdd"
	case focal < 40:
		color = "fed"
	case focal < 65:
		color = "ffd"
	}

	return `! style = "background:#` + color + `;" ` + sortAttr + "|" + display
}

// apertureBlades keeps the count in front of the 枚 counter word.
func apertureBlades(value string) string {
	return strings.TrimSpace(strings.Split(value, "枚")[0])
}

// filterSize passes the thread size through, screw-in filters marked
// impossible (不可) render as N/A.
func filterSize(value string) string {
	if strings.Contains(value, "不可") {
		return "N/A"
	}
	return value
}
