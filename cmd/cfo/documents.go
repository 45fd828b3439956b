package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/engine"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/service"
)

func documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Manage ingested financial documents",
		Long:  `List, inspect, review and delete normalized financial documents.`,
	}

	cmd.AddCommand(listDocumentsCmd())
	cmd.AddCommand(showDocumentCmd())
	cmd.AddCommand(reviewDocumentCmd())
	cmd.AddCommand(editMetricCmd())
	cmd.AddCommand(deleteDocumentCmd())

	return cmd
}

func listDocumentsCmd() *cobra.Command {
	var (
		docType   string
		docStatus string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter := service.DocumentFilter{
				Type:   model.StatementType(docType),
				Status: model.DocumentStatus(docStatus),
				Limit:  limit,
			}
			docs, err := store.ListDocuments(ctx, owner, filter)
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}

			if len(docs) == 0 {
				fmt.Println("No documents found. Use 'cfo normalize --save' or 'cfo analyze' to ingest one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tType\tStatus\tPeriod\tFile\n")
			for _, doc := range docs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s to %s\t%s\n",
					doc.ID, doc.Type, doc.Status,
					doc.PeriodStart.Format("2006-01-02"),
					doc.PeriodEnd.Format("2006-01-02"),
					doc.FileName)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&docType, "type", "", "filter by statement type (profit_loss, balance_sheet, cash_flow)")
	cmd.Flags().StringVar(&docStatus, "status", "", "filter by status (pending, reviewed, approved, rejected)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum documents to return")

	return cmd
}

func showDocumentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a document with its metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			doc, err := store.GetDocument(ctx, owner, args[0])
			if err != nil {
				return fmt.Errorf("failed to get document: %w", err)
			}

			fmt.Printf("Document %s\n", doc.ID)
			fmt.Printf("File:    %s\n", doc.FileName)
			fmt.Printf("Type:    %s\n", doc.Type)
			fmt.Printf("Status:  %s\n", doc.Status)
			fmt.Printf("Period:  %s to %s\n",
				doc.PeriodStart.Format("2006-01-02"),
				doc.PeriodEnd.Format("2006-01-02"))
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Canonical Key\tCategory\tValue\tVerified\n")
			for _, m := range doc.Metrics {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%v\n", m.CanonicalKey, m.Category, m.Value, m.Verified)
			}
			return w.Flush()
		},
	}
}

func reviewDocumentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <id> <status>",
		Short: "Set a document's review status",
		Long:  `Move a document through the review workflow: pending, reviewed, approved or rejected.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			status := model.DocumentStatus(strings.ToLower(args[1]))
			switch status {
			case model.StatusPending, model.StatusReviewed, model.StatusApproved, model.StatusRejected:
			default:
				return fmt.Errorf("invalid status %q", args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateDocumentStatus(ctx, owner, args[0], status); err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			fmt.Printf("Document %s is now %s\n", args[0], status)
			return nil
		},
	}
}

func editMetricCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-metric <id> <canonical-key> <value>",
		Short: "Correct a metric value",
		Long:  `Overwrite one extracted metric value with a reviewer-supplied amount. The metric is marked verified.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			value, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[2], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateMetric(ctx, owner, args[0], args[1], value, true); err != nil {
				return fmt.Errorf("failed to update metric: %w", err)
			}

			fmt.Printf("Metric %s on %s set to %.2f\n", args[1], args[0], value)
			return nil
		},
	}
}

func deleteDocumentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document and its metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			owner, err := requireOwner()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			eng := engine.New(store, nil, nil)
			if err := eng.DeleteDocument(ctx, owner, args[0]); err != nil {
				return fmt.Errorf("failed to delete document: %w", err)
			}

			fmt.Printf("Deleted document %s\n", args[0])
			return nil
		},
	}
}
