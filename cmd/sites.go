package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/faculty-cli/internal/model"
)

var sitesYAML bool

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the configured target sites",
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := model.Targets()

		if sitesYAML {
			out, err := yaml.Marshal(targets)
			if err != nil {
				return eris.Wrap(err, "marshal sites")
			}
			cmd.Print(string(out))
			return nil
		}

		for _, s := range targets {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10s %s\n", s.Key, s.Mode, s.URL)
		}
		return nil
	},
}

func init() {
	sitesCmd.Flags().BoolVar(&sitesYAML, "yaml", false, "machine-readable yaml output")
	rootCmd.AddCommand(sitesCmd)
}
