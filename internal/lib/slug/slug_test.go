package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain title", in: "Contoh Berita Satu", want: "contoh-berita-satu"},
		{name: "accents", in: "Café résumé", want: "cafe-resume"},
		{name: "umlaut", in: "Über München", want: "uber-munchen"},
		{name: "punctuation", in: "Rapat Koordinasi: 2024/2025!", want: "rapat-koordinasi-2024-2025"},
		{name: "surrounding spaces", in: "  Halo  Dunia  ", want: "halo-dunia"},
		{name: "existing dashes", in: "a -- b", want: "a-b"},
		{name: "no latin", in: "!!! ???", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}
