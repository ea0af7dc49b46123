package main

import (
	"github.com/spf13/cobra"

	"docqa/internal/config"
)

func newRootCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	serveCmd.Flags().String("port", "8000", "listen port (overrides PORT)")
	serveCmd.Flags().Bool("debug", false, "development logging (overrides LOG_DEBUG)")

	root := &cobra.Command{
		Use:          "docqa",
		Short:        "Document question-answering API",
		SilenceUsage: true,
		// A bare invocation starts the server too.
		RunE: serveCmd.RunE,
	}
	root.Flags().AddFlagSet(serveCmd.Flags())
	root.AddCommand(serveCmd)
	return root
}
