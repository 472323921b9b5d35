package render

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"scoregen/model"
	"scoregen/score"
	"scoregen/timing"
	"scoregen/util"
)

// Options control how absolute seconds are re-encoded as SMF ticks. A
// rendered file declares Tempo as its reference tempo and all conversions
// run against it, so wall-clock timing is preserved even when measures
// carry different tempos.
type Options struct {
	TicksPerQuarter uint16
	Tempo           float64
}

func DefaultOptions() Options {
	return Options{TicksPerQuarter: 960, Tempo: 120}
}

// NoteEvents converts realized notes to their wire form, keeping order.
func NoteEvents(notes []score.PositionedNote) []model.NoteEvent {
	res := make([]model.NoteEvent, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.NoteEvent{
			Note:     n.Note.String(),
			Offset:   n.Offset.Seconds(),
			Duration: n.Duration.Seconds(),
			Velocity: n.Velocity,
		})
	}
	return res
}

// Boundary is a single note on or note off instant.
type Boundary struct {
	At        timing.Duration
	IsNoteOff bool
	Key       uint8
	Velocity  uint8
}

// Boundaries flattens realized notes into on/off instants sorted by time.
// At equal times note offs sort first, so a retrigger of the same key
// survives the encoding.
func Boundaries(notes []score.PositionedNote) ([]Boundary, error) {
	var res []Boundary
	for _, n := range notes {
		key, err := n.Note.MidiNumber()
		if err != nil {
			return nil, err
		}
		res = append(res, Boundary{At: n.Offset, Key: key, Velocity: midiVelocity(n.Velocity)})
		res = append(res, Boundary{At: n.MomentOfRelease(), IsNoteOff: true, Key: key})
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].At != res[j].At {
			return res[i].At < res[j].At
		}
		return res[i].IsNoteOff && !res[j].IsNoteOff
	})
	return res, nil
}

func midiVelocity(velocity float64) uint8 {
	scaled := int(velocity*127 + 0.5)
	if scaled < 0 {
		scaled = 0
	}
	return uint8(util.Min(scaled, 127))
}

func smfTrack(name string, track *score.Track, opts Options) (smf.Track, error) {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(opts.Tempo))
	if len(track.Measures) > 0 {
		signature := track.Measures[0].Signature
		tr.Add(0, smf.MetaMeter(uint8(signature.Numerator), uint8(signature.Denominator)))
	}

	boundaries, err := Boundaries(track.GenerateNotes())
	if err != nil {
		return nil, err
	}

	ticks := smf.MetricTicks(opts.TicksPerQuarter)
	var prev uint32
	for _, b := range boundaries {
		abs := ticks.Ticks(opts.Tempo, b.At.AsTime())
		delta := abs - prev
		prev = abs
		if b.IsNoteOff {
			tr.Add(delta, midi.NoteOff(0, b.Key))
		} else {
			tr.Add(delta, midi.NoteOn(0, b.Key, b.Velocity))
		}
	}
	tr.Close(0)
	return tr, nil
}

// TrackSMF encodes one realized track as a single-track SMF.
func TrackSMF(name string, track *score.Track, opts Options) (*smf.SMF, error) {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)

	tr, err := smfTrack(name, track, opts)
	if err != nil {
		return nil, err
	}
	s.Tracks = append(s.Tracks, tr)
	return &s, nil
}

// ScoreSMF encodes every track of a score as an SMF track, in sorted name
// order.
func ScoreSMF(sc *score.Score, opts Options) (*smf.SMF, error) {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)

	for _, name := range sc.TrackNames() {
		track, err := sc.GetTrack(name)
		if err != nil {
			return nil, err
		}
		tr, err := smfTrack(name, track, opts)
		if err != nil {
			return nil, err
		}
		s.Tracks = append(s.Tracks, tr)
	}
	return &s, nil
}
