package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tahsinmert/sveltekit-webgl-experience/internal/build"
	"github.com/tahsinmert/sveltekit-webgl-experience/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site",
	Long: `The build command renders the landing page from the compiled-in site
configuration, converts Markdown under './content/' using layouts from
'./layouts/' (or the built-in ones), copies './static/' and writes the result
to the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := build.Run(cmd.Context(), appConfig, site.Config(), logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
