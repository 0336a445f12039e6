package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/wp-notes-api/app/cmd/schema"
	"github.com/ribgsilva/wp-notes-api/app/cmd/token"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	// empty logger
	log := zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:           "notesctl",
		Short:         "Administration commands of the WP Notes API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(log), token.Command(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
