package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tahsinmert/sveltekit-webgl-experience/internal/site"
)

var (
	showFormat string
	showCheck  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the site configuration",
	Long: `The show command prints the compiled-in site configuration (navigation,
hero, features and SEO metadata) as YAML or JSON. With --check it also verifies
that every field is set and every link and media path is absolute or an anchor.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd.OutOrStdout(), site.Config(), showFormat, showCheck)
	},
}

func runShow(w io.Writer, sc site.Configuration, format string, check bool) error {
	if check {
		if err := site.Validate(sc); err != nil {
			return err
		}
	}

	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return fmt.Errorf("failed to encode site configuration: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sc); err != nil {
			return fmt.Errorf("failed to encode site configuration: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "output format: yaml or json")
	showCmd.Flags().BoolVar(&showCheck, "check", false, "validate the configuration before printing")
	rootCmd.AddCommand(showCmd)
}
