// Command tasker runs the tasks server and its maintenance commands.
//
//	tasker                  # same as `tasker serve`
//	tasker serve            # bind PORT and serve the API plus the SPA
//	tasker migrate          # run pending migrations
//	tasker migrate:rollback
//	tasker migrate:status
//	tasker seed             # insert sample tasks into an empty table
//	tasker route:list       # print the API route table
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tasker",
	Short:         "Tasks API and single-page app host",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
