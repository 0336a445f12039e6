// Package post renders the store-native representation of a single note and
// the filters applied to it before it leaves the api.
package post

import (
	"bytes"
	"fmt"

	"github.com/ribgsilva/wp-notes-api/business/v1/note"
	"github.com/ribgsilva/wp-notes-api/platform/web/links"
	"github.com/yuin/goldmark"
)

const privateTitlePrefix = "Private: "

// Text is a text field in its rendered and raw forms.
type Text struct {
	Rendered  *string `json:"rendered,omitempty"`
	Plaintext *string `json:"plaintext,omitempty"`
	Protected *bool   `json:"protected,omitempty"`
}

// Post is the generic representation of a note.
type Post struct {
	Id     uint64 `json:"id" example:"5"`
	Status string `json:"status" example:"private"`
	Type   string `json:"type" example:"wp_notes"`
	Link   string `json:"link" example:"http://localhost:8080/wp/v2/wp-notes/5"`
	Title  Text   `json:"title"`
	// ModifiedGmt holds the store-native datetime until a filter rewrites it.
	ModifiedGmt any       `json:"modified_gmt" swaggertype:"integer" example:"1686830400000"`
	Content     Text      `json:"content"`
	Author      uint64    `json:"author" example:"9"`
	Links       links.Set `json:"_links,omitempty" swaggertype:"object"`
}

// Filter post-processes a prepared Post. It receives the note it was built from.
type Filter func(p *Post, n note.Note)

// Renderer prepares Posts.
type Renderer struct {
	Markdown goldmark.Markdown
	Links    note.LinkRenderer
	BaseURL  string
}

func NewRenderer(baseURL string, lr note.LinkRenderer) Renderer {
	return Renderer{Markdown: goldmark.New(), Links: lr, BaseURL: baseURL}
}

// Prepare renders n and runs every filter over the result, in order.
func (r Renderer) Prepare(n note.Note, filters ...Filter) (Post, error) {
	var buf bytes.Buffer
	if err := r.Markdown.Convert([]byte(n.Content), &buf); err != nil {
		return Post{}, fmt.Errorf("render content of note %d: %w", n.Id, err)
	}

	title := n.Title
	if n.Status == note.StatusPrivate {
		title = privateTitlePrefix + title
	}
	content := buf.String()
	protected := false

	p := Post{
		Id:          n.Id,
		Status:      n.Status,
		Type:        n.Type,
		Link:        fmt.Sprintf("%s%s/%d", r.BaseURL, note.RestBase, n.Id),
		Title:       Text{Rendered: &title},
		ModifiedGmt: gmtISO(n.ModifiedGmt),
		Content:     Text{Rendered: &content, Protected: &protected},
		Author:      n.Author,
	}
	if r.Links != nil {
		p.Links = r.Links.Links(n)
	}

	for _, f := range filters {
		f(&p, n)
	}

	return p, nil
}

// RawContent swaps the rendered title and content for their raw text, since the
// desktop client renders Markdown itself, and turns modified_gmt into epoch
// milliseconds.
func RawContent(p *Post, n note.Note) {
	title := n.Title
	content := n.Content

	p.Title.Rendered = nil
	p.Title.Plaintext = &title
	p.Content.Rendered = nil
	p.Content.Plaintext = &content
	p.ModifiedGmt = note.EpochMillis(n.ModifiedGmt)
}

// gmtISO formats the store datetime the way the generic representation does.
func gmtISO(modifiedGmt string) string {
	if len(modifiedGmt) == len("2006-01-02 15:04:05") && modifiedGmt[10] == ' ' {
		return modifiedGmt[:10] + "T" + modifiedGmt[11:]
	}
	return modifiedGmt
}
