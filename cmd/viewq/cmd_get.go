package main

import (
	"context"
	"fmt"
	"github.com/go-andiamo/viewq/couch"
	"github.com/spf13/cobra"
	"os"
)

var (
	getFlagServer    string
	getFlagBucket    string
	getFlagDesign    string
	getFlagView      string
	getFlagQueryFile string
	getFlagDebug     bool
)

var commandGet = &cobra.Command{
	Use:   "get [name=value ...]",
	Short: "Execute a view query and print the rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return get(cmd.Context(), args)
	},
}

func init() {
	commandGet.Flags().StringVarP(&getFlagServer, "server", "s", "", "view server base url (or VIEWQ_SERVER)")
	commandGet.Flags().StringVarP(&getFlagBucket, "bucket", "b", "", "bucket name (or VIEWQ_BUCKET)")
	commandGet.Flags().StringVarP(&getFlagDesign, "design", "d", "", "design document name")
	commandGet.Flags().StringVarP(&getFlagView, "view", "v", "", "view name")
	commandGet.Flags().StringVarP(&getFlagQueryFile, "query-file", "f", "", "read design, view and params from a yaml file")
	commandGet.Flags().BoolVar(&getFlagDebug, "debug", false, "write request/response lines to stderr")
	mainCommand.AddCommand(commandGet)
}

func get(ctx context.Context, args []string) error {
	q, err := loadQuery(getFlagQueryFile, getFlagDesign, getFlagView, args)
	if err != nil {
		return err
	}
	opts, err := q.options()
	if err != nil {
		return err
	}
	options := couch.Options{
		BaseURL: getFlagServer,
		Bucket:  getFlagBucket,
	}
	if options.BaseURL == "" {
		options.BaseURL = os.Getenv("VIEWQ_SERVER")
	}
	if options.Bucket == "" {
		options.Bucket = os.Getenv("VIEWQ_BUCKET")
	}
	if getFlagDebug {
		options.Debug = os.Stderr
	}
	client := couch.NewClient(options)
	res, err := client.View(ctx, q.Design, q.View, opts)
	if err != nil {
		return err
	}
	if res.TotalRows.IsPresent() {
		fmt.Printf("total_rows: %d\n", res.TotalRows.OrElse(0))
	}
	for _, row := range res.Rows {
		if row.ID != "" {
			fmt.Printf("%s\t%s\t%s\n", row.ID, string(row.Key), string(row.Value))
		} else {
			fmt.Printf("%s\t%s\n", string(row.Key), string(row.Value))
		}
	}
	for _, ve := range res.Errors {
		_, _ = fmt.Fprintf(os.Stderr, "error from %s: %s\n", ve.From, ve.Reason)
	}
	return nil
}
