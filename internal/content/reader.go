package content

// Node types the extractor recognizes as media embeds. Every other node
// type passes through untouched.
const (
	NodeTypeYouTube = "youtube"
	NodeTypeVideo   = "video"
	NodeTypeIframe  = "iframe"
	NodeTypeText    = "text"

	MarkTypeLink = "link"
)

// MediaReference is one embedded video found while walking a document tree.
type MediaReference struct {
	VideoID      string
	SourceURL    string
	ThumbnailURL string
}

// Extractor walks document trees and collects embedded media references.
// It is stateless and safe for concurrent use on any number of trees.
type Extractor struct {
	Quality ThumbnailQuality
}

func NewExtractor() *Extractor {
	return &Extractor{Quality: QualityMedium}
}

// All returns every media reference in depth-first pre-order.
func (e *Extractor) All(root *Node) []MediaReference {
	var refs []MediaReference
	e.walk(root, func(ref MediaReference) bool {
		refs = append(refs, ref)
		return true
	})
	return refs
}

// First returns the first media reference in traversal order.
func (e *Extractor) First(root *Node) (MediaReference, bool) {
	var first MediaReference
	found := false
	e.walk(root, func(ref MediaReference) bool {
		first = ref
		found = true
		return false
	})
	return first, found
}

// FirstThumbnail returns the thumbnail URL of the first embedded video.
func (e *Extractor) FirstThumbnail(root *Node) (string, bool) {
	ref, ok := e.First(root)
	if !ok {
		return "", false
	}
	return ref.ThumbnailURL, true
}

// FirstThumbnailJSON parses a serialized tree and returns the first
// thumbnail. An unparseable document yields no thumbnail, never an error.
func (e *Extractor) FirstThumbnailJSON(raw string) (string, bool) {
	node, err := Parse(raw)
	if err != nil {
		return "", false
	}
	return e.FirstThumbnail(node)
}

// walk visits nodes depth-first in pre-order and emits references until the
// visitor returns false.
func (e *Extractor) walk(n *Node, visit func(MediaReference) bool) bool {
	if n == nil {
		return true
	}

	switch n.Type {
	case NodeTypeYouTube, NodeTypeVideo, NodeTypeIframe:
		if src, ok := n.SourceURL(); ok {
			if !e.emit(src, visit) {
				return false
			}
		}
	case NodeTypeText:
		if !e.emitAll(n.Text, visit) {
			return false
		}
		for _, mark := range n.Marks {
			if mark.Type != MarkTypeLink {
				continue
			}
			if href, ok := mark.Href(); ok {
				if !e.emit(href, visit) {
					return false
				}
			}
		}
	}

	for _, child := range n.Content {
		if !e.walk(child, visit) {
			return false
		}
	}
	return true
}

// emit parses a single-URL candidate (an embed src or a link href) and
// hands a reference to the visitor. Strings without a recognizable video
// URL are skipped silently.
func (e *Extractor) emit(candidate string, visit func(MediaReference) bool) bool {
	videoID, ok := ParseVideoID(candidate)
	if !ok {
		return true
	}
	return visit(MediaReference{
		VideoID:      videoID,
		SourceURL:    candidate,
		ThumbnailURL: ThumbnailURL(videoID, e.Quality),
	})
}

// emitAll scans free text, which may name any number of videos, and emits
// one reference per URL in text order.
func (e *Extractor) emitAll(text string, visit func(MediaReference) bool) bool {
	for _, videoID := range ParseVideoIDs(text) {
		ok := visit(MediaReference{
			VideoID:      videoID,
			SourceURL:    text,
			ThumbnailURL: ThumbnailURL(videoID, e.Quality),
		})
		if !ok {
			return false
		}
	}
	return true
}
