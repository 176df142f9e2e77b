package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Al3x4n/Fast-DDS/cmd/bitmapctl/command"
)

var rootCmd = &cobra.Command{
	Use:   "bitmapctl",
	Short: "Inspect and manipulate persisted BitmapRange windows",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&command.ConfigFile, "config", "c", "", "the configuration file path")
	rootCmd.AddCommand(command.NewDumpCommand())
	rootCmd.AddCommand(command.NewAddCommand())
	rootCmd.AddCommand(command.NewSlideCommand())
	rootCmd.AddCommand(command.NewSeedCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
