/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// extentCmd represents the extent command
var extentCmd = &cobra.Command{
	Use:   "extent <file>",
	Short: "Measure the populated extent of a sheet",
	Long: `Walks row 1 to the right and column 1 downward, counting populated cells
until the first empty one. This is the same probe the show and export
commands use to size their reads.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := showExtent(args[0]); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(extentCmd)
}

func showExtent(path string) error {
	h, err := openSheet(path)
	if err != nil {
		return err
	}
	defer h.Close()

	cols, err := h.ColumnCount()
	if err != nil {
		return err
	}
	rows, err := h.RowCount()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s column(s), %s row(s)\n",
		h.SheetName(), humanize.Comma(int64(cols)), humanize.Comma(int64(rows)))

	return nil
}
