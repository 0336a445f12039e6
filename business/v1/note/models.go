package note

import "github.com/ribgsilva/wp-notes-api/platform/web/links"

const (
	// PostType is the store-native type of notes.
	PostType      = "wp_notes"
	StatusPrivate = "private"
	StatusPublish = "publish"
)

// Note is a note as held by the content store.
type Note struct {
	Id          uint64 `json:"id" example:"5"`
	Author      uint64 `json:"author" example:"9"`
	Type        string `json:"type" example:"wp_notes"`
	Status      string `json:"status" example:"private"`
	Title       string `json:"title" example:"my note"`
	Content     string `json:"content" example:"# my note"`
	ModifiedGmt string `json:"modifiedGmt" example:"2023-06-15 12:00:00"`
}

// Summary is the compact form of a note returned to the desktop client.
type Summary struct {
	Id               uint64    `json:"id" example:"5"`
	ModificationDate int64     `json:"modificationDate" example:"1686830400000"`
	Links            links.Set `json:"_links,omitempty" swaggertype:"object"`
}

// Event is a change notification published by the content store.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Ref identifies a note inside a delete event.
type Ref struct {
	Id uint64 `json:"id"`
}
