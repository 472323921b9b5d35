package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"scoregen/render"
	"scoregen/score"
	"scoregen/songs"
	"scoregen/timing"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Plays a song on a MIDI out port",
	Long:  `Plays a song on a MIDI out port`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		play(args[0])
	},
}

func play(name string) {
	defer midi.CloseDriver()

	sc, ok := songs.Library()[name]
	if !ok {
		fmt.Printf("no song named %v\n", name)
		return
	}

	var notes []score.PositionedNote
	for _, trackName := range sc.TrackNames() {
		track, err := sc.GetTrack(trackName)
		if err != nil {
			panic("Could not realize " + name + " because: " + err.Error())
		}
		notes = append(notes, track.GenerateNotes()...)
	}

	boundaries, err := render.Boundaries(notes)
	if err != nil {
		panic("Could not prepare " + name + " because: " + err.Error())
	}

	out, err := midi.OutPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI out port")
		return
	}
	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	var prev timing.Duration
	for _, b := range boundaries {
		time.Sleep((b.At - prev).AsTime())
		prev = b.At
		if b.IsNoteOff {
			send(midi.NoteOff(0, b.Key))
		} else {
			send(midi.NoteOn(0, b.Key, b.Velocity))
		}
	}
}
