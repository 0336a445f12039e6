package note

import (
	"context"

	"github.com/ribgsilva/wp-notes-api/persistence/v1/note"
)

// Store is the content store holding the notes.
type Store interface {
	Query(ctx context.Context, postType, status string, author uint64) ([]Note, error)
	Find(ctx context.Context, id uint64) (Note, error)
}

// DatabaseStore is the Store backed by the notes table.
type DatabaseStore struct{}

func (DatabaseStore) Query(ctx context.Context, postType, status string, author uint64) ([]Note, error) {
	found, err := note.List(ctx, note.Query{Type: postType, Status: status, Author: author})
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}
	return notes, nil
}

// Find returns ErrNotFound when no note of PostType has the given id.
func (DatabaseStore) Find(ctx context.Context, id uint64) (Note, error) {
	find, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if find.Id == 0 || find.Type != PostType {
		return Note{}, ErrNotFound
	}
	return Note(find), nil
}
