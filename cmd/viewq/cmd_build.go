package main

import (
	"fmt"
	"github.com/go-andiamo/viewq"
	"github.com/spf13/cobra"
)

var (
	buildFlagDesign    string
	buildFlagView      string
	buildFlagQueryFile string
)

var commandBuild = &cobra.Command{
	Use:   "build [name=value ...]",
	Short: "Validate view options and print the query uri",
	RunE: func(cmd *cobra.Command, args []string) error {
		return build(args)
	},
}

func init() {
	commandBuild.Flags().StringVarP(&buildFlagDesign, "design", "d", "", "design document name")
	commandBuild.Flags().StringVarP(&buildFlagView, "view", "v", "", "view name")
	commandBuild.Flags().StringVarP(&buildFlagQueryFile, "query-file", "f", "", "read design, view and params from a yaml file")
	mainCommand.AddCommand(commandBuild)
}

func build(args []string) error {
	q, err := loadQuery(buildFlagQueryFile, buildFlagDesign, buildFlagView, args)
	if err != nil {
		return err
	}
	opts, err := q.options()
	if err != nil {
		return err
	}
	fmt.Println(viewq.ViewURI(q.Design, q.View, opts))
	return nil
}
