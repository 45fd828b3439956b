package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/engine"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <statement.pdf>",
		Short: "Analyze a scanned statement with the document service",
		Long: `Upload a scanned or photographed financial statement to the configured
document analysis service, normalize the extracted fields and tables, and
persist the resulting document for review.

Requires docintel.endpoint and docintel.api_key in the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			analyzer, err := initAnalyzer()
			if err != nil {
				return fmt.Errorf("failed to initialize analyzer: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			eng := engine.New(store, analyzer, nil)
			result, err := eng.ProcessDocument(ctx, owner, filepath.Base(args[0]), content)
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", args[0], err)
			}
			printResult(result)

			return nil
		},
	}
}
