package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scoregen",
	Short: "Symbolic score builder and MIDI renderer",
	Long:  `Builds symbolic scores and renders them to MIDI files, a MIDI out port, or JSON over HTTP.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
