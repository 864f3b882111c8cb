package wikitext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		unit     string
		values   []string
		expected string
	}{
		{
			unit:     "g",
			values:   []string{"230"},
			expected: "{{cvt|230|g}}",
		},
		{
			unit:     "m|ft",
			values:   []string{"0.45"},
			expected: "{{cvt|0.45|m|ft}}",
		},
		{
			unit:     "mm",
			values:   []string{"62.8", "×", "41.9"},
			expected: "{{cvt|62.8|×|41.9|mm}}",
		},
		{
			unit:     "mm",
			values:   nil,
			expected: "{{cvt||mm}}",
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, Convert(test.unit, test.values...))
	}
}

func TestFNumber(t *testing.T) {
	require.Equal(t, "{{f/|1.5}}", FNumber("1.5"))
}

func TestLinks(t *testing.T) {
	require.Equal(t, "[[Focal length]]", Link("Focal length"))
	require.Equal(
		t,
		"[[aspheric lens|Asph.]]",
		LinkTitled("aspheric lens", "Asph."),
	)
}

func TestCitation(t *testing.T) {
	c := Citation{
		Url:        "https://www.cosina.co.jp/voigtlander/vm/",
		Title:      "VM Lenses",
		Website:    "Cosina Voigtländer",
		AccessDate: "2024-03-12",
	}

	require.Equal(
		t,
		"<ref>{{cite web|url=https://www.cosina.co.jp/voigtlander/vm/|title=VM Lenses|website=Cosina Voigtländer|access-date=2024-03-12}}</ref>",
		c.Ref(),
	)
	require.Equal(
		t,
		"<ref>{{Cite web |url=https://www.cosina.co.jp/voigtlander/vm/ |title=VM Lenses |access-date=2024-03-12|website=Cosina Voigtländer}}</ref>",
		c.CaptionRef(),
	)
}
