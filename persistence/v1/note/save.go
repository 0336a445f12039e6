package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/wp-notes-api/sys"
)

// Save stores n, replacing any previous version with the same id.
func Save(ctx context.Context, n Note) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	previous, err := authorOf(dbCtx, tx, n.Id)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ?", n.Id); err != nil {
		return fmt.Errorf("failed to exec replace stmt: %w", err)
	}
	_, err = tx.ExecContext(dbCtx, "INSERT INTO notes ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		n.Id, n.Author, n.Type, n.Status, n.Title, n.Content, n.ModifiedGmt)
	if err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	authors := []uint64{n.Author}
	if previous != 0 && previous != n.Author {
		authors = append(authors, previous)
	}

	// entries are dropped on both sides of the commit so a read racing the
	// write cannot keep the old version cached
	invalidate(ctx, n.Id, authors...)
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save tx: %w", err)
	}
	invalidate(ctx, n.Id, authors...)

	return nil
}

// Delete removes the note with the given id. Deleting a missing note is not an error.
func Delete(ctx context.Context, id uint64) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	author, err := authorOf(dbCtx, tx, id)
	if err != nil {
		return err
	}
	if author == 0 {
		return nil
	}

	if _, err := tx.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	invalidate(ctx, id, author)
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete tx: %w", err)
	}
	invalidate(ctx, id, author)

	return nil
}

func authorOf(ctx context.Context, tx *sql.Tx, id uint64) (uint64, error) {
	var author uint64
	err := tx.QueryRowContext(ctx, "SELECT author FROM notes WHERE id = ?", id).Scan(&author)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("failed to query note author: %w", err)
	}
	return author, nil
}
