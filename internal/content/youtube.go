package content

import (
	"fmt"
	"regexp"
	"sort"
)

// ThumbnailQuality selects the youtube thumbnail tier.
type ThumbnailQuality string

const (
	QualityDefault  ThumbnailQuality = "default"
	QualityMedium   ThumbnailQuality = "mqdefault"
	QualityHigh     ThumbnailQuality = "hqdefault"
	QualityStandard ThumbnailQuality = "sddefault"
	QualityMax      ThumbnailQuality = "maxresdefault"
)

const thumbnailURLFormat = "https://img.youtube.com/vi/%s/%s.jpg"

// Accepted youtube URL shapes, tried in order. First match wins.
var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^"'\s&]*&)*v=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube-nocookie\.com/embed/([A-Za-z0-9_-]+)`),
}

// ParseVideoID extracts a youtube video id from a URL or free text.
// Malformed input is not an error, just a miss.
func ParseVideoID(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for _, pattern := range videoURLPatterns {
		if m := pattern.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ParseVideoIDs extracts every youtube video id in s, ordered by where
// each URL starts in the text. A free-text leaf can name several videos
// in different URL shapes; text position decides the order, not shape.
func ParseVideoIDs(s string) []string {
	if s == "" {
		return nil
	}

	type match struct {
		offset int
		id     string
	}
	var matches []match
	for _, pattern := range videoURLPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(s, -1) {
			matches = append(matches, match{offset: m[0], id: s[m[2]:m[3]]})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].offset < matches[j].offset
	})

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.id)
	}
	return ids
}

// ThumbnailURL derives the thumbnail address for a video id.
func ThumbnailURL(videoID string, quality ThumbnailQuality) string {
	if quality == "" {
		quality = QualityMedium
	}
	return fmt.Sprintf(thumbnailURLFormat, videoID, quality)
}
