package import_gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "short text keeps everything",
			text: "A tiny summary",
			want: "A tiny summary.",
		},
		{
			name: "stops after the sentence that passes eighty characters",
			text: "First sentence is quite long and gets us most of the way to the cutoff point here. Second sentence. Third sentence.",
			want: "First sentence is quite long and gets us most of the way to the cutoff point here.",
		},
		{
			name: "accumulates multiple short sentences",
			text: "One. Two. Three.",
			want: "One. Two. Three..",
		},
		{
			name: "empty input becomes a bare period",
			text: "",
			want: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortText(tt.text))
		})
	}
}
