package model

// NoteEvent is the wire form of a realized note. Offset and duration are
// absolute seconds from the start of the track.
type NoteEvent struct {
	Note     string  `json:"note"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Velocity float64 `json:"velocity"`
}

// RenderedFileToSong maps a rendered MIDI filename to the song it holds.
type RenderedFileToSong = map[string]string
