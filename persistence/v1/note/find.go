package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/wp-notes-api/sys"
)

// Find returns the note with the given id, or a zero Note when it does not exist.
func Find(ctx context.Context, id uint64) (Note, error) {
	db := sys.R.Database

	key := fmt.Sprintf(noteKey, id)

	var note Note
	if fromCache(ctx, &note, key, "") {
		return note, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT "+columns+" FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(dbCtx, id).
		Scan(&note.Id, &note.Author, &note.Type, &note.Status, &note.Title, &note.Content, &note.ModifiedGmt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	toCache(ctx, note, key, "")

	return note, nil
}
