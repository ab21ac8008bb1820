package twconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantKind ColorKind
		wantErr  bool
	}{
		{name: "six digit hex", value: "#16a34a", wantKind: ColorHex},
		{name: "upper case hex", value: "#DC2626", wantKind: ColorHex},
		{name: "short hex", value: "#fff", wantKind: ColorHex},
		{name: "hex with alpha", value: "#9ca3af80", wantKind: ColorHex},
		{name: "surrounding spaces", value: "  #9ca3af ", wantKind: ColorHex},
		{name: "rgb function", value: "rgb(22 163 74)", wantKind: ColorFunction},
		{name: "rgb with alpha placeholder", value: "rgb(var(--green) / <alpha-value>)", wantKind: ColorFunction},
		{name: "oklch", value: "oklch(62.7% 0.17 149.2)", wantKind: ColorFunction},
		{name: "css variable", value: "var(--brand-600)", wantKind: ColorVariable},
		{name: "named colour", value: "rebeccapurple", wantKind: ColorNamed},
		{name: "keyword", value: "currentColor", wantKind: ColorKeyword},
		{name: "transparent", value: "transparent", wantKind: ColorKeyword},

		{name: "empty", value: "", wantErr: true},
		{name: "five hex digits", value: "#16a34", wantErr: true},
		{name: "non hex digits", value: "#ggg", wantErr: true},
		{name: "bare hash", value: "#", wantErr: true},
		{name: "missing hash", value: "16a34a", wantErr: true},
		{name: "unknown name", value: "greenish", wantErr: true},
		{name: "not a colour function", value: "calc(1px + 2px)", wantErr: true},
		{name: "unterminated function", value: "rgb(1 2 3", wantErr: true},
		{name: "two colours", value: "#fff #000", wantErr: true},
		{name: "a length", value: "12px", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, err := ParseColor(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, color.Kind)
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		value  string
		want   string
		wantOK bool
	}{
		{value: "#16A34A", want: "#16a34a", wantOK: true},
		{value: "#abc", want: "#aabbcc", wantOK: true},
		{value: "#abcd", want: "#aabbcc", wantOK: true},
		{value: "#9ca3af80", want: "#9ca3af", wantOK: true},
		{value: "Red", want: "#ff0000", wantOK: true},
		{value: "rgb(0 0 0)", wantOK: false},
		{value: "transparent", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			color, err := ParseColor(tt.value)
			require.NoError(t, err)

			got, ok := color.Hex()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
