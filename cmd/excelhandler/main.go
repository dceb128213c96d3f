/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	sheetName  string
	verbose    bool
	scriptMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "excelhandler",
	Short: "Open, measure, stream and edit spreadsheet files",
	Long: `excelhandler works on xlsx, legacy xls and delimited text files: it
measures the populated extent of a sheet, streams the rows as labeled
records, updates cells and saves the result, all from the command line.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("[x]", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.excelhandler.yaml)")
	rootCmd.PersistentFlags().StringVarP(&sheetName, "sheet", "s", "", "sheet to bind (default is the first one)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show every session step")
	rootCmd.PersistentFlags().BoolVar(&scriptMode, "script", false, "never prompt, fail instead")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".excelhandler".
		viper.AddConfigPath(home)
		viper.SetConfigName(".excelhandler")
	}

	viper.SetEnvPrefix("excelhandler")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("config file:", viper.ConfigFileUsed())
	}
}
