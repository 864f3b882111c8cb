package voigtlander

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLensConst(t *testing.T) {
	cases := []struct {
		value    string
		expected string
	}{
		{"8群10枚", "10e/8g"},
		{"6群8枚（非球面レンズ2枚）", "8e/6g"},
		{"11群13枚", "13e/11g"},
		// no groups/elements counts, keep the raw text
		{"群枚", "群枚"},
		{"8 groups 10 elements", "8 groups 10 elements"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, normalizeLensConst(c.value), "value: %q", c.value)
	}
}

func TestNormalizeMeasurement(t *testing.T) {
	cases := []struct {
		value    string
		unit     string
		expected string
	}{
		{"0.45m", "m", "{{cvt|0.45|m|ft}}"},
		{"0.7m（全域）", "m", "{{cvt|0.7|m|ft}}"},
		{"約230g", "g", "{{cvt|230|g}}"},
		{"φ62.8×41.9mm", "mm", "{{cvt|62.8|×|41.9|mm}}"},
		{"φ58×", "mm", "{{cvt|58|mm}}"},
		{"×", "mm", "{{cvt||mm}}"},
		// nothing numeric, keep the raw text
		{"金属製", "g", "金属製"},
		{"", "m", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, normalizeMeasurement(c.value, c.unit), "value: %q", c.value)
	}
}

func TestNormalizeFNumber(t *testing.T) {
	cases := []struct {
		value    string
		expected string
	}{
		{"1:1.5", "{{f/|1.5}}"},
		{"1 : 2", "{{f/|2}}"},
		{"1: 4.5", "{{f/|4.5}}"},
		{"1 :5.6", "{{f/|5.6}}"},
		{"1:0.95", "{{f/|0.95}}"},
		// not written as a ratio, keep the raw text
		{"F2.8", "F2.8"},
		{"1：2.8", "1：2.8"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, normalizeFNumber(c.value), "value: %q", c.value)
	}
}

func TestNormalizeFocalLength(t *testing.T) {
	cases := []struct {
		value    string
		expected string
	}{
		{"50mm", `! style = "background:#ffd;" |50`},
		{"約75mm", `! style = "background:#dfd;" |75`},
		// color band boundaries
		{"20.9mm", `! style = "background:#fdd;" |20.9`},
		{"21mm", `! style = "background:#fed;" |21`},
		{"39.9mm", `! style = "background:#fed;" |39.9`},
		{"40mm", `! style = "background:#ffd;" |40`},
		{"64.9mm", `! style = "background:#ffd;" |64.9`},
		{"65mm", `! style = "background:#dfd;" |65`},
		// crop sensor lenses sort and band by the full frame equivalent
		{
			"23.5mm（フルサイズ換算:約35.5mm）",
			`! style = "background:#fed;" data-sort-value="35.5"|23.5（full frame equivalent: 35.5）`,
		},
		{
			"10.5mm（フルサイズ換算:21mm）",
			`! style = "background:#fed;" data-sort-value="21"|10.5（full frame equivalent: 21）`,
		},
		// not parseable, keep the raw text
		{"ズーム", "ズーム"},
		{"50mm フルサイズ換算:", "50mm フルサイズ換算:"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, normalizeFocalLength(c.value), "value: %q", c.value)
	}
}

func TestApertureBlades(t *testing.T) {
	cases := []struct {
		value    string
		expected string
	}{
		{"10枚", "10"},
		{"12 枚", "12"},
		{"10枚（円形絞り）", "10"},
		{"9", "9"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, apertureBlades(c.value), "value: %q", c.value)
	}
}

func TestFilterSize(t *testing.T) {
	cases := []struct {
		value    string
		expected string
	}{
		{"φ58mm", "φ58mm"},
		{"43mm", "43mm"},
		{"取付不可", "N/A"},
		{"不可", "N/A"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, filterSize(c.value), "value: %q", c.value)
	}
}
