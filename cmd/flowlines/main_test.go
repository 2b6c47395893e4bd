package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputFormat(t *testing.T) {
	defer func(o, f string) { *outFlag, *formatFlag = o, f }(*outFlag, *formatFlag)

	tests := []struct {
		out, format string
		want        string
		err         bool
	}{
		{"lines.png", "", "png", false},
		{"lines.SVG", "", "svg", false},
		{"lines.json", "", "geojson", false},
		{"-", "", "png", false},
		{"-", "geojson", "geojson", false},
		{"lines.png", "svg", "svg", false},
		{"lines.gif", "", "", true},
	}
	for _, tt := range tests {
		*outFlag, *formatFlag = tt.out, tt.format
		got, err := outputFormat()
		if tt.err {
			require.Error(t, err, tt.out)
			continue
		}
		require.NoError(t, err, tt.out)
		require.Equal(t, tt.want, got, tt.out)
	}
}
