/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

var setOut string

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <file> <row> <col> <value>",
	Short: "Update one cell and save the workbook",
	Long: `Writes value into the cell at (row, col), 1-based, and saves the workbook
in place unless --output names another file. Values that read as numbers
are stored typed.`,
	Args: cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setCell(args[0], args[1], args[2], args[3]); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVarP(&setOut, "output", "o", "", "save to this file instead of overwriting")
}

func setCell(path, rowArg, colArg, value string) error {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return fmt.Errorf("row must be a number, got %q", rowArg)
	}
	col, err := strconv.Atoi(colArg)
	if err != nil {
		return fmt.Errorf("col must be a number, got %q", colArg)
	}

	h, err := openSheet(path)
	if err != nil {
		return err
	}
	defer h.Close()

	if err := h.UpdateCell(excelhandler.Position{Row: row, Col: col}, typedValue(value)); err != nil {
		return err
	}

	if setOut != "" {
		if err := h.SaveAs(setOut); err != nil {
			return err
		}
		fmt.Println("[√] workbook saved:", setOut)
		return nil
	}
	if err := h.Save(); err != nil {
		return err
	}
	fmt.Println("[√] workbook saved:", path)

	return nil
}

// typedValue keeps numbers as numbers so the sheet stores them typed.
func typedValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
