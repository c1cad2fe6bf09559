package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tahsinmert/sveltekit-webgl-experience/internal/build"
	"github.com/tahsinmert/sveltekit-webgl-experience/internal/server"
	"github.com/tahsinmert/sveltekit-webgl-experience/internal/site"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command builds the site, serves the output directory on a
local port and watches the content, layouts and static directories, rebuilding
the site when they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := appConfig.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Config{
			Port:      port,
			Root:      appConfig.OutputDir,
			WatchDirs: []string{appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir},
			Logger:    logger,
			Build: func(ctx context.Context) error {
				_, err := build.Run(ctx, appConfig, site.Config(), logger)
				return err
			},
		})
		return srv.Serve(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
