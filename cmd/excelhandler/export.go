/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sina-karimi-93/microsoft-excel-handler/export"
)

var (
	exportFormat string
	exportOut    string
	exportTable  string
	exportPretty bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the sheet records to csv, json, yaml or sqlite",
	Long: `Streams the populated extent of the bound sheet, takes the first row as
headers and writes the records out in the chosen format. The sqlite format
appends the records to a table named by --table.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := exportSheet(args[0]); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "csv, json, yaml or sqlite (default: guessed from --output)")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default: next to the input)")
	exportCmd.Flags().StringVarP(&exportTable, "table", "t", "records", "sqlite table name")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "indent the json output")
}

func exportSheet(path string) error {
	format := exportFormat
	if format == "" {
		format = formatFor(exportOut)
	}
	if format == "" {
		format = viper.GetString("format")
	}
	if format == "" {
		return fmt.Errorf("pass --format or an --output whose extension names one")
	}

	h, err := openSheet(path)
	if err != nil {
		return err
	}
	defer h.Close()

	recs, err := h.FetchRecords()
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out, err = outFilename(filepath.Dir(path), base, extFor(format))
		if err != nil {
			return err
		}
	}

	if format == "sqlite" {
		n, err := export.SQLite(out, exportTable, recs)
		if err != nil {
			return err
		}
		fmt.Printf("[√] %s record(s) stored in %s\n", humanize.Comma(int64(n)), out)
		return nil
	}

	fh, err := os.Create(out)
	if err != nil {
		return err
	}
	defer fh.Close()

	switch format {
	case "csv":
		err = export.CSV(fh, recs)
	case "json":
		err = export.JSON(fh, recs, exportPretty)
	case "yaml":
		err = export.YAML(fh, recs)
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("[√] records saved:", out)
	return nil
}

// formatFor guesses the export format from the output extension.
func formatFor(out string) string {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	}
	return ""
}

// extFor names the default output extension for each format.
func extFor(format string) string {
	switch format {
	case "sqlite":
		return "db"
	case "yaml":
		return "yaml"
	}
	return format
}
