package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-sui/framework/app"
)

func serveCmd() *cobra.Command {
	var (
		envFiles []string
		port     string
		headless bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Boot the application and publish the Container over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			application := app.New(envFiles...)
			if cmd.Flags().Changed("port") {
				application.Config.App.Port = port
			}
			if cmd.Flags().Changed("headless") {
				application.Config.Host.Headless = headless
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return application.Run(ctx)
		},
	}

	cmd.Flags().StringSliceVarP(&envFiles, "env", "e", nil, "Env files to load (default .env)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Override APP_PORT")
	cmd.Flags().BoolVar(&headless, "headless", false, "Do not publish the Container")

	return cmd
}
