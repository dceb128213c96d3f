/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// sheetsCmd represents the sheets command
var sheetsCmd = &cobra.Command{
	Use:   "sheets <file>",
	Short: "List the sheets of a workbook",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := listSheets(args[0]); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}

//
// listSheets prints every sheet of the workbook in index order, marking the
// one the session bound
//
func listSheets(path string) error {
	h, err := openSheet(path)
	if err != nil {
		return err
	}
	defer h.Close()

	names, err := h.SheetNames()
	if err != nil {
		return err
	}
	for i, name := range names {
		mark := " "
		if name == h.SheetName() {
			mark = "*"
		}
		fmt.Printf("%s %2d  %s\n", mark, i+1, name)
	}

	return nil
}
