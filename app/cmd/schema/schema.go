package schema

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/wp-notes-api/persistence/v1/schema"
	"github.com/ribgsilva/wp-notes-api/platform/env"
	"github.com/ribgsilva/wp-notes-api/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command returns the schema command and its create and delete subcommands.
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(log, func(ctx context.Context) error {
				cmd.Println("creating schema")
				if err := schema.Create(ctx); err != nil {
					return fmt.Errorf("failed to create schema: %w", err)
				}
				cmd.Println("created schema")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Deletes the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(log, func(ctx context.Context) error {
				cmd.Println("deleting schema")
				if err := schema.Drop(ctx); err != nil {
					return fmt.Errorf("failed to delete schema: %w", err)
				}
				cmd.Println("deleted schema")
				return nil
			})
		},
	})

	return cmd
}

// withDatabase opens the database into sys.R for the duration of f.
func withDatabase(log *zap.SugaredLogger, f func(ctx context.Context) error) error {
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/wp_notes")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	// mysql
	db, err := sql.Open("mysql", sys.Configs.Database.ConnectionURL)
	if err != nil {
		return fmt.Errorf("error to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	sys.R.Database = db

	opCtx, opCancel := context.WithTimeout(context.Background(), sys.Configs.Database.OperationTimeout)
	defer opCancel()
	return f(opCtx)
}
