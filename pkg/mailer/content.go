package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Content is a parsed content file: YAML frontmatter metadata plus a
// markdown body.
type Content struct {
	Meta map[string]any
	Body string
}

// ParseContent splits a content file into frontmatter metadata and markdown
// body. Frontmatter is optional and sits between --- lines at the top of
// the file.
func ParseContent(raw []byte) (*Content, error) {
	marker := []byte("---")

	if !bytes.HasPrefix(raw, marker) {
		return &Content{Meta: map[string]any{}, Body: string(raw)}, nil
	}

	rest := bytes.TrimLeft(raw[len(marker):], "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: nothing after the opening marker", ErrInvalidFrontmatter)
	}

	head, tail, found := bytes.Cut(rest, marker)
	if !found {
		return nil, fmt.Errorf("%w: closing marker missing", ErrInvalidFrontmatter)
	}

	meta := map[string]any{}
	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Content{Meta: meta, Body: string(trimOneNewline(tail))}, nil
}

// trimOneNewline drops a single LF or CRLF so the body does not begin with
// the line break that followed the closing marker.
func trimOneNewline(b []byte) []byte {
	if bytes.HasPrefix(b, []byte("\r\n")) {
		return b[2:]
	}
	if len(b) > 0 && b[0] == '\n' {
		return b[1:]
	}
	return b
}
