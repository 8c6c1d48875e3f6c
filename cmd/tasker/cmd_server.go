package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/internal/bootstrap"
)

// tasker serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, closer, err := bootstrap.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	return application.Run(cmd.Context())
}

// tasker route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered API routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		application, closer, err := bootstrap.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closer()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range application.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
