package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/faculty-cli/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <faculty_data.json>",
	Short: "Re-export an existing JSON dataset as csv or xlsx",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := export.ReadJSON(args[0])
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return eris.Errorf("export: no records in %s", args[0])
		}

		switch exportFormat {
		case "csv":
			err = export.WriteCSV(exportOutput, records)
		case "xlsx":
			err = export.WriteXLSX(exportOutput, records)
		default:
			return eris.Errorf("export: unknown format %q (csv or xlsx)", exportFormat)
		}
		if err != nil {
			return err
		}

		zap.L().Info("exported",
			zap.String("from", args[0]),
			zap.String("to", exportOutput),
			zap.Int("records", len(records)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportOutput, "out", "faculty_data.csv", "output file path")
	rootCmd.AddCommand(exportCmd)
}
