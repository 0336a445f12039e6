// Package schema manages the notes table of the content store adapter.
package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/wp-notes-api/sys"
)

// Create creates the notes table if it does not exist yet.
func Create(ctx context.Context) error {
	if _, err := sys.R.Database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Drop removes the notes table and everything in it.
func Drop(ctx context.Context) error {
	if _, err := sys.R.Database.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}
