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

	"github.com/spf13/cobra"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
)

var newHeaders string

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a blank workbook",
	Long: `Creates a blank workbook and saves it at the given path. When a file with
that name already exists the new one deviates to name(1), name(2) and so
on instead of overwriting it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := newWorkbook(args[0]); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newHeaders, "headers", "", "comma-separated labels to seed row 1 with")
}

func newWorkbook(path string) error {
	b, err := pickBackend(path)
	if err != nil {
		return err
	}

	h := excelhandler.New(b, handlerOptions())
	defer h.Close()

	if err := h.CreateNew(); err != nil {
		return err
	}

	if newHeaders != "" {
		for i, label := range strings.Split(newHeaders, ",") {
			pos := excelhandler.Position{Row: 1, Col: i + 1}
			if err := h.UpdateCell(pos, strings.TrimSpace(label)); err != nil {
				return err
			}
		}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	fpath, err := outFilename(filepath.Dir(path), base, ext)
	if err != nil {
		return err
	}
	if err := h.SaveAs(fpath); err != nil {
		return err
	}

	fmt.Println("[√] workbook saved:", fpath)
	return nil
}
