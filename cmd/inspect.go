package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"scoregen/constants"
	"scoregen/midi"
	"scoregen/model"
	"scoregen/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a rendered MIDI file",
	Long:  `Inspects a rendered MIDI file, or lists the render manifest when called without arguments`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			listManifest()
			return
		}
		inspect(args[0])
	},
}

func listManifest() {
	path := filepath.Join(constants.GetOutDir(), constants.ManifestFilename)
	manifest := util.ReadBinaryOrPanic[model.RenderedFileToSong](path)

	filenames := util.GetKeys(manifest)
	sort.Strings(filenames)
	for _, filename := range filenames {
		fmt.Printf("%v: %v\n", filename, manifest[filename])
	}
}

func inspect(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not inspect because: " + err.Error())
	}

	for i, events := range s.Tracks {
		fmt.Printf("track %v:\n", i)
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			seconds := float64(s.TimeAt(absTicks)) / 1000000.0
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				fmt.Printf("  %.3fs: note %v on (velocity %v)\n", seconds, key, velocity)
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				fmt.Printf("  %.3fs: note %v off\n", seconds, key)
			}
		}
	}
}
