package post

import (
	"encoding/json"
	"testing"

	"github.com/ribgsilva/wp-notes-api/business/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = note.Note{
	Id:          5,
	Author:      9,
	Type:        note.PostType,
	Status:      note.StatusPrivate,
	Title:       "Groceries",
	Content:     "# List\n\n* milk",
	ModifiedGmt: "2023-06-15 12:00:00",
}

func TestPrepareGeneric(t *testing.T) {
	r := NewRenderer("http://example.com", note.RESTLinks{BaseURL: "http://example.com"})

	p, err := r.Prepare(sample)
	require.NoError(t, err)

	require.NotNil(t, p.Title.Rendered)
	assert.Equal(t, "Private: Groceries", *p.Title.Rendered)
	require.NotNil(t, p.Content.Rendered)
	assert.Contains(t, *p.Content.Rendered, "<h1>List</h1>")
	assert.Contains(t, *p.Content.Rendered, "<li>milk</li>")
	assert.Equal(t, "2023-06-15T12:00:00", p.ModifiedGmt)
	assert.Equal(t, "http://example.com/wp/v2/wp-notes/5", p.Link)
	assert.Contains(t, p.Links, "self")
}

func TestRawContentFilter(t *testing.T) {
	r := NewRenderer("http://example.com", nil)

	p, err := r.Prepare(sample, RawContent)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, map[string]any{"plaintext": "Groceries"}, got["title"])
	assert.Equal(t, map[string]any{"plaintext": "# List\n\n* milk", "protected": false}, got["content"])
	assert.Equal(t, float64(1686830400000), got["modified_gmt"])
	assert.NotContains(t, got, "_links")
}

func TestPublishedTitleHasNoPrefix(t *testing.T) {
	published := sample
	published.Status = note.StatusPublish

	p, err := NewRenderer("", nil).Prepare(published)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", *p.Title.Rendered)
}
