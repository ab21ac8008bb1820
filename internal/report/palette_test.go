package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yacobolo/twconfig"
)

func TestPrintPalette_Plain(t *testing.T) {
	doc := &twconfig.Document{ThemeExtensions: map[string]map[string]string{
		"green": {"600": "#16a34a", "50": "#f0fdf4"},
		"gray":  {"400": "#9ca3af"},
		"brand": {"DEFAULT": "not-a-colour"},
		"empty": {},
	}}

	var buf bytes.Buffer
	PrintPalette(&buf, doc, false)

	assert.Equal(t, "brand\n"+
		"  DEFAULT  not-a-colour (invalid)\n"+
		"\n"+
		"empty\n"+
		"  (no shades)\n"+
		"\n"+
		"gray\n"+
		"  400      #9ca3af\n"+
		"\n"+
		"green\n"+
		"  50       #f0fdf4\n"+
		"  600      #16a34a\n", buf.String())
}

func TestPrintPalette_NoFamilies(t *testing.T) {
	var buf bytes.Buffer
	PrintPalette(&buf, &twconfig.Document{}, false)
	assert.Equal(t, "No theme colour extensions declared.\n", buf.String())
}

func TestSwatch(t *testing.T) {
	assert.Empty(t, swatch("#16a34a", false))
	assert.Empty(t, swatch("rgb(0 0 0)", true))
	assert.Empty(t, swatch("bogus", true))
	assert.NotEmpty(t, swatch("#16a34a", true))
}
