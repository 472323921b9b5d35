package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"scoregen/note"
	"scoregen/score"
	"scoregen/timing"
)

func fourFour() *score.Measure {
	return score.NewMeasure(timing.MustTempo(120), timing.MustSignature(4, 4))
}

func TestNoteEvents(t *testing.T) {
	assert := assert.New(t)
	m := fourFour().AddNoteVelocity(note.New("C", 3), 1, 2, 0.5)
	events := NoteEvents(score.NewTrack(m).GenerateNotes())

	assert.Len(events, 1)
	assert.Equal("C3", events[0].Note)
	assert.Equal(0.5, events[0].Offset)
	assert.Equal(1.0, events[0].Duration)
	assert.Equal(0.5, events[0].Velocity)
}

func TestBoundariesNoteOffSortsFirstAtTies(t *testing.T) {
	assert := assert.New(t)
	m := fourFour().
		AddNote(note.New("C", 3), 0, 2).
		AddNote(note.New("D", 3), 2, 1)

	boundaries, err := Boundaries(m.GenerateNotes(0))
	assert.NoError(err)
	assert.Len(boundaries, 4)

	// C3 releases at 1.0s, exactly when D3 starts
	assert.Equal(timing.Duration(1.0), boundaries[1].At)
	assert.True(boundaries[1].IsNoteOff)
	assert.Equal(timing.Duration(1.0), boundaries[2].At)
	assert.False(boundaries[2].IsNoteOff)
}

func TestBoundariesVelocityScaling(t *testing.T) {
	assert := assert.New(t)
	m := fourFour().
		AddNoteVelocity(note.New("C", 3), 0, 1, 1.0).
		AddNoteVelocity(note.New("D", 3), 1, 1, 1.5).
		AddNoteVelocity(note.New("E", 3), 2, 1, 0)

	boundaries, err := Boundaries(m.GenerateNotes(0))
	assert.NoError(err)
	assert.Equal(uint8(127), boundaries[0].Velocity)
	assert.Equal(uint8(127), boundaries[2].Velocity)
	assert.Equal(uint8(0), boundaries[4].Velocity)
}

func TestBoundariesUnknownNoteName(t *testing.T) {
	assert := assert.New(t)
	m := fourFour().AddNote(note.New("H", 3), 0, 1)
	_, err := Boundaries(m.GenerateNotes(0))
	assert.Error(err)
}

type parsedEvent struct {
	isNoteOff bool
	key       uint8
	absTicks  uint32
}

func parseNoteEvents(t *testing.T, s *smf.SMF) []parsedEvent {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.NoError(t, err)

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)

	var res []parsedEvent
	for _, events := range parsed.Tracks {
		var absTicks uint32
		for _, event := range events {
			absTicks += event.Delta
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				res = append(res, parsedEvent{isNoteOff: false, key: key, absTicks: absTicks})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				res = append(res, parsedEvent{isNoteOff: true, key: key, absTicks: absTicks})
			}
		}
	}
	return res
}

func TestTrackSMFRoundTrip(t *testing.T) {
	assert := assert.New(t)
	m := fourFour().
		AddNote(note.New("C", 3), 0, 1).
		AddNote(note.New("D", 3), 1, 1)
	track := score.NewTrack(score.Repeat(m, 2)...)

	s, err := TrackSMF("lead", track, DefaultOptions())
	assert.NoError(err)

	// one quarter note at 120 bpm is 960 ticks at the default resolution
	assert.Equal([]parsedEvent{
		{false, 48, 0},
		{true, 48, 960},
		{false, 50, 960},
		{true, 50, 1920},
		{false, 48, 3840},
		{true, 48, 4800},
		{false, 50, 4800},
		{true, 50, 5760},
	}, parseNoteEvents(t, s))

	// the shared measure's stored notes stay in beat coordinates
	assert.Equal(timing.Duration(0), m.Notes[0].Offset)
}

func TestScoreSMFTrackOrder(t *testing.T) {
	assert := assert.New(t)
	sc := score.NewScore()
	sc.AddTrack("round", score.NewTrack(fourFour().AddNote(note.New("E", 3), 0, 1)))
	sc.AddTrack("lead", score.NewTrack(fourFour().AddNote(note.New("C", 3), 0, 1)))

	s, err := ScoreSMF(sc, DefaultOptions())
	assert.NoError(err)
	assert.Len(s.Tracks, 2)

	// sorted name order: lead first, so C3 before E3
	events := parseNoteEvents(t, s)
	assert.Equal(uint8(48), events[0].key)
	assert.Equal(uint8(52), events[2].key)
}
