package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/wp-notes-api/persistence/v1/note"
)

// Save stores a note published by the content store.
func Save(ctx context.Context, n Note) error {
	if n.Id == 0 || n.Author == 0 {
		return fmt.Errorf("%w: id and author are required", ErrInvalidNote)
	}
	if n.Type == "" {
		n.Type = PostType
	}
	if n.Status == "" {
		n.Status = StatusPrivate
	}
	return note.Save(ctx, note.Note(n))
}

// Delete removes a note deleted in the content store.
func Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: id is required", ErrInvalidNote)
	}
	return note.Delete(ctx, id)
}
