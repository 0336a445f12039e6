package note_test

import (
	"context"
	"testing"

	"github.com/ribgsilva/wp-notes-api/persistence/v1/note"
	"github.com/ribgsilva/wp-notes-api/platform/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAndFind(t *testing.T) {
	s := dbtest.Setup(t)
	dbtest.Insert(t,
		[]any{5, 9, "wp_notes", "private", "first", "first body", "2023-06-15 12:00:00"},
		[]any{6, 9, "wp_notes", "publish", "public", "public body", "2023-06-15 12:00:00"},
		[]any{7, 10, "wp_notes", "private", "other", "other body", "2023-06-15 12:00:00"},
	)
	ctx := context.Background()

	notes, err := note.List(ctx, note.Query{Type: "wp_notes", Status: "private", Author: 9})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.Note{
		Id: 5, Author: 9, Type: "wp_notes", Status: "private",
		Title: "first", Content: "first body", ModifiedGmt: "2023-06-15 12:00:00",
	}, notes[0])
	assert.True(t, s.Exists("notes.author.9"), "listing should be cached")

	empty, err := note.List(ctx, note.Query{Type: "wp_notes", Status: "private", Author: 404})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	found, err := note.Find(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), found.Author)
	assert.True(t, s.Exists("notes.7"), "note should be cached")

	cached, err := note.Find(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, found, cached)

	missing, err := note.Find(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, missing.Id)
}

func TestSaveAndDelete(t *testing.T) {
	s := dbtest.Setup(t)
	ctx := context.Background()
	q := note.Query{Type: "wp_notes", Status: "private", Author: 9}

	n := note.Note{Id: 5, Author: 9, Type: "wp_notes", Status: "private", Title: "t", Content: "c", ModifiedGmt: "2023-01-01 00:00:00"}
	require.NoError(t, note.Save(ctx, n))

	notes, err := note.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.True(t, s.Exists("notes.author.9"))

	n.Title = "renamed"
	n.ModifiedGmt = "2023-01-02 00:00:00"
	require.NoError(t, note.Save(ctx, n))
	assert.False(t, s.Exists("notes.author.9"), "save should invalidate the listing")

	notes, err = note.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "renamed", notes[0].Title)

	require.NoError(t, note.Delete(ctx, 5))
	assert.False(t, s.Exists("notes.author.9"), "delete should invalidate the listing")

	notes, err = note.List(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, notes)

	assert.NoError(t, note.Delete(ctx, 5), "deleting twice is not an error")
}
