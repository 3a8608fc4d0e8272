package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "watch link",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "watch link with extra params",
			input: "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
			found: true,
		},
		{
			name:  "short link",
			input: "https://youtu.be/f6kdp27TYZs",
			want:  "f6kdp27TYZs",
			found: true,
		},
		{
			name:  "embed link",
			input: "https://www.youtube.com/embed/f6kdp27TYZs",
			want:  "f6kdp27TYZs",
			found: true,
		},
		{
			name:  "privacy enhanced embed",
			input: "https://www.youtube-nocookie.com/embed/f6kdp27TYZs",
			want:  "f6kdp27TYZs",
			found: true,
		},
		{
			name:  "url inside prose",
			input: "worth watching: https://youtu.be/ABC789 before class",
			want:  "ABC789",
			found: true,
		},
		{
			name:  "unrelated url",
			input: "https://vimeo.com/12345",
			found: false,
		},
		{
			name:  "plain text",
			input: "nothing to see here",
			found: false,
		},
		{
			name:  "empty",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ParseVideoID(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVideoIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single url",
			input: "https://youtu.be/f6kdp27TYZs",
			want:  []string{"f6kdp27TYZs"},
		},
		{
			name:  "several urls in text order",
			input: "first https://youtu.be/AAA111 then https://www.youtube.com/watch?v=BBB222 last https://www.youtube-nocookie.com/embed/CCC333",
			want:  []string{"AAA111", "BBB222", "CCC333"},
		},
		{
			name:  "text position wins over shape order",
			input: "https://youtu.be/AAA111 https://www.youtube.com/watch?v=BBB222",
			want:  []string{"AAA111", "BBB222"},
		},
		{
			name:  "repeated video",
			input: "https://youtu.be/AAA111 twice https://youtu.be/AAA111",
			want:  []string{"AAA111", "AAA111"},
		},
		{
			name:  "no urls",
			input: "nothing to see here",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVideoIDs(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/XYZ123/mqdefault.jpg",
		ThumbnailURL("XYZ123", QualityMedium))
	assert.Equal(t,
		"https://img.youtube.com/vi/XYZ123/maxresdefault.jpg",
		ThumbnailURL("XYZ123", QualityMax))

	// empty quality falls back to the medium tier
	assert.Equal(t,
		"https://img.youtube.com/vi/XYZ123/mqdefault.jpg",
		ThumbnailURL("XYZ123", ""))
}
