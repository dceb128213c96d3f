/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
	"github.com/sina-karimi-93/microsoft-excel-handler/export"
)

var (
	showFormat string
	showRange  string
	showPretty bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the populated extent of a sheet",
	Long: `Prints the populated extent of the bound sheet. The table format streams
the raw rows; csv, json and yaml take the first row as headers and print
labeled records instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := showSheet(args[0]); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showFormat, "format", "f", "table", "table, csv, json or yaml")
	showCmd.Flags().StringVarP(&showRange, "range", "r", "", "cell region like 2,1:9,4 (printed as a table)")
	showCmd.Flags().BoolVar(&showPretty, "pretty", false, "indent the json output")
}

func showSheet(path string) error {
	h, err := openSheet(path)
	if err != nil {
		return err
	}
	defer h.Close()

	if showRange != "" {
		start, end, err := parseRegion(showRange)
		if err != nil {
			return err
		}
		rows, err := h.FetchRange(start, end)
		if err != nil {
			return err
		}
		return printRows(os.Stdout, rows)
	}

	switch showFormat {
	case "table":
		rows, err := h.FetchAll()
		if err != nil {
			return err
		}
		return printRows(os.Stdout, rows)
	case "csv":
		recs, err := h.FetchRecords()
		if err != nil {
			return err
		}
		return export.CSV(os.Stdout, recs)
	case "json":
		recs, err := h.FetchRecords()
		if err != nil {
			return err
		}
		return export.JSON(os.Stdout, recs, showPretty)
	case "yaml":
		recs, err := h.FetchRecords()
		if err != nil {
			return err
		}
		return export.YAML(os.Stdout, recs)
	}

	return fmt.Errorf("unknown format: %s", showFormat)
}

//
// printRows streams rows as an aligned table and reports how many were
// printed
//
func printRows(w io.Writer, rows *excelhandler.Rows) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	n := 0
	for rows.Next() {
		fmt.Fprintln(tw, strings.Join(rows.Values(), "\t"))
		n++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Printf("[√] %s row(s)\n", humanize.Comma(int64(n)))
	return nil
}

//
// parseRegion reads "r1,c1:r2,c2" into the two corner positions
//
func parseRegion(s string) (start, end excelhandler.Position, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		err = fmt.Errorf("region must look like r1,c1:r2,c2, got %q", s)
		return
	}
	if start, err = parsePosition(parts[0]); err != nil {
		return
	}
	end, err = parsePosition(parts[1])
	return
}

func parsePosition(s string) (excelhandler.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return excelhandler.Position{}, fmt.Errorf("position must look like row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return excelhandler.Position{}, err
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return excelhandler.Position{}, err
	}
	return excelhandler.Position{Row: row, Col: col}, nil
}
