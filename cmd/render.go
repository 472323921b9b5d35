package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scoregen/constants"
	"scoregen/midi"
	"scoregen/model"
	"scoregen/render"
	"scoregen/songs"
	"scoregen/util"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders songs to MIDI files",
	Long:  `Renders songs to MIDI files`,
	Run: func(cmd *cobra.Command, args []string) {
		Render(args)
	},
}

func Render(names []string) {
	library := songs.Library()
	if len(names) == 0 {
		names = util.GetKeys(library)
		sort.Strings(names)
	}

	util.RecreateOutputDir()
	manifest := make(model.RenderedFileToSong)
	for i, name := range names {
		sc, ok := library[name]
		if !ok {
			fmt.Printf("Skipping %v because: no such song\n", name)
			continue
		}
		fmt.Printf("Rendering %v of %v songs\n", i+1, len(names))

		s, err := render.ScoreSMF(sc, render.DefaultOptions())
		if err != nil {
			panic("Could not render " + name + " because: " + err.Error())
		}

		filename := uuid.New().String() + ".mid"
		path := filepath.Join(constants.GetOutDir(), filename)
		if err := midi.WriteMidiFile(path, s); err != nil {
			panic("Could not write " + filename + " because: " + err.Error())
		}
		manifest[filename] = name
	}

	util.CreateBinary(filepath.Join(constants.GetOutDir(), constants.ManifestFilename), manifest)
}
