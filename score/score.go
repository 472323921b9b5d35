package score

import (
	"errors"
	"fmt"
	"sort"

	"scoregen/note"
	"scoregen/timing"
	"scoregen/util"
)

// PositionedNote is a note bound to an offset and duration on a timeline,
// with a relative velocity. It is a plain value: realizing a measure at an
// offset produces new instances and never touches the stored ones.
type PositionedNote struct {
	Note     note.Note
	Offset   timing.Duration
	Duration timing.Duration
	Velocity float64
}

// WithOffset returns a copy shifted later by extra.
func (p PositionedNote) WithOffset(extra timing.Duration) PositionedNote {
	p.Offset = p.Offset.Add(extra)
	return p
}

// MomentOfRelease is the instant the note stops sounding.
func (p PositionedNote) MomentOfRelease() timing.Duration {
	return p.Offset.Add(p.Duration)
}

func (p PositionedNote) String() string {
	return fmt.Sprintf("%v at %v for %v", p.Note, p.Offset, p.Duration)
}

// Measure holds notes in beat-relative coordinates under one tempo and
// signature. Build it with AddNote calls, then treat it as read-only;
// tracks share measures by reference to express repeated phrases.
type Measure struct {
	Tempo     timing.Tempo
	Signature timing.Signature
	Notes     []PositionedNote
}

func NewMeasure(tempo timing.Tempo, signature timing.Signature) *Measure {
	return &Measure{Tempo: tempo, Signature: signature}
}

// AddNote places a note at a beat position for a beat count at full
// velocity and returns the measure for chaining. Positions past the
// measure's nominal length are accepted; whether overflow is meaningful
// is the consumer's call.
func (m *Measure) AddNote(n note.Note, positionBeats, durationBeats float64) *Measure {
	return m.AddNoteVelocity(n, positionBeats, durationBeats, 1.0)
}

func (m *Measure) AddNoteVelocity(n note.Note, positionBeats, durationBeats, velocity float64) *Measure {
	m.Notes = append(m.Notes, PositionedNote{
		Note:     n,
		Offset:   timing.FromBeats(positionBeats, m.Tempo),
		Duration: timing.FromBeats(durationBeats, m.Tempo),
		Velocity: velocity,
	})
	return m
}

// TotalTime is the span this measure occupies on a timeline.
func (m *Measure) TotalTime() timing.Duration {
	return m.Tempo.QuarterNote().Scale(m.Signature.NumQuarterNotes())
}

// GenerateNotes realizes the measure at base, in insertion order. Stored
// notes are never modified, so a measure can be realized any number of
// times at any offsets.
func (m *Measure) GenerateNotes(base timing.Duration) []PositionedNote {
	res := make([]PositionedNote, 0, len(m.Notes))
	for _, n := range m.Notes {
		res = append(res, n.WithOffset(base))
	}
	return res
}

func (m *Measure) String() string {
	return fmt.Sprintf("%v at %v with %v notes", m.Signature, m.Tempo, len(m.Notes))
}

// Track is an ordered sequence of measures. The same *Measure may appear
// any number of times; each placement realizes to its own events.
type Track struct {
	Measures []*Measure
}

func NewTrack(measures ...*Measure) *Track {
	return &Track{Measures: measures}
}

// Repeat expands a measure into n references to it, for building repeated
// phrases without copying note data.
func Repeat(m *Measure, n int) []*Measure {
	res := make([]*Measure, n)
	for i := range res {
		res[i] = m
	}
	return res
}

// GenerateNotes realizes the whole track: each measure is realized at the
// running offset, which then advances by that measure's total time.
func (t *Track) GenerateNotes() []PositionedNote {
	var notes []PositionedNote
	var offset timing.Duration
	for _, m := range t.Measures {
		notes = append(notes, m.GenerateNotes(offset)...)
		offset = offset.Add(m.TotalTime())
	}
	return notes
}

// TotalTime is the span of all measures back to back.
func (t *Track) TotalTime() timing.Duration {
	var total timing.Duration
	for _, m := range t.Measures {
		total = total.Add(m.TotalTime())
	}
	return total
}

// ErrTrackNotFound reports a lookup for a track name a score doesn't have.
var ErrTrackNotFound = errors.New("track not found")

// Score is a named collection of tracks.
type Score struct {
	tracks map[string]*Track
}

func NewScore() *Score {
	return &Score{tracks: make(map[string]*Track)}
}

// AddTrack inserts the track under name, silently replacing any previous
// entry.
func (s *Score) AddTrack(name string, track *Track) {
	s.tracks[name] = track
}

func (s *Score) GetTrack(name string) (*Track, error) {
	track, ok := s.tracks[name]
	if !ok {
		return nil, fmt.Errorf("%v: %w", name, ErrTrackNotFound)
	}
	return track, nil
}

// TrackNames lists the score's track names in sorted order.
func (s *Score) TrackNames() []string {
	names := util.GetKeys(s.tracks)
	sort.Strings(names)
	return names
}
