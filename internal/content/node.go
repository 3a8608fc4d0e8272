package content

import (
	"bytes"
	"encoding/json"
)

// Mark is an inline annotation on a text node (link, bold, etc.).
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Node is one node of a rich-document tree. The wire format is
// {type, attrs?, content?, text?, marks?} where content may be either a
// list of child nodes or a single nested node depending on the producer.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
}

// UnmarshalJSON accepts content either as an array of nodes or as a single
// nested node object.
func (n *Node) UnmarshalJSON(data []byte) error {
	type alias Node
	aux := struct {
		Content json.RawMessage `json:"content,omitempty"`
		*alias
	}{alias: (*alias)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Content)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '{' {
		child := &Node{}
		if err := json.Unmarshal(raw, child); err != nil {
			return err
		}
		n.Content = []*Node{child}
		return nil
	}

	return json.Unmarshal(raw, &n.Content)
}

// Parse decodes a serialized document tree. Callers that need graceful
// degradation on user-authored garbage should check the error and treat
// failure as an empty document.
func Parse(raw string) (*Node, error) {
	var node Node
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// SourceURL returns the src attribute of an embedding node, if any.
func (n *Node) SourceURL() (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	src, ok := n.Attrs["src"].(string)
	if !ok || src == "" {
		return "", false
	}
	return src, true
}

// Href returns the href attribute of a link mark, if any.
func (m Mark) Href() (string, bool) {
	if m.Attrs == nil {
		return "", false
	}
	href, ok := m.Attrs["href"].(string)
	if !ok || href == "" {
		return "", false
	}
	return href, true
}
