package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/wp-notes-api/sys"
)

// List returns every note matching q. There is no limit on the result size.
func List(ctx context.Context, q Query) ([]Note, error) {
	db := sys.R.Database

	key := fmt.Sprintf(authorKey, q.Author)
	field := q.Type + ":" + q.Status

	var notes []Note
	if fromCache(ctx, &notes, key, field) {
		return notes, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT "+columns+" FROM notes WHERE post_type = ? AND post_status = ? AND author = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(dbCtx, q.Type, q.Status, q.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	notes = []Note{}
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.Id, &note.Author, &note.Type, &note.Status, &note.Title, &note.Content, &note.ModifiedGmt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list rows: %w", err)
	}

	toCache(ctx, notes, key, field)

	return notes, nil
}
