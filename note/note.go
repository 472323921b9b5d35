package note

import "fmt"

// semitone offsets from C within one octave
var semitones = map[string]int{
	"C":  0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"F":  5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"B":  11,
}

// Note is a pitch identity. The timing core never looks inside it; only
// the MIDI boundary cares that the name resolves to a key number.
type Note struct {
	Name   string
	Octave int
}

func New(name string, octave int) Note {
	return Note{Name: name, Octave: octave}
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

// MidiNumber maps the note to a MIDI key, octave -1 starting at key 0 so
// that C4 is 60.
func (n Note) MidiNumber() (uint8, error) {
	semitone, ok := semitones[n.Name]
	if !ok {
		return 0, fmt.Errorf("unknown note name %q", n.Name)
	}
	num := (n.Octave+1)*12 + semitone
	if num < 0 || num > 127 {
		return 0, fmt.Errorf("note %v is outside the MIDI range", n)
	}
	return uint8(num), nil
}
