package songs

import (
	"scoregen/note"
	"scoregen/score"
	"scoregen/timing"
)

// VaderJacob builds the lead line of the round, two measures per phrase.
func VaderJacob() *score.Track {
	tempo := timing.MustTempo(120)
	signature := timing.MustSignature(4, 4)

	theme1 := score.NewMeasure(tempo, signature).
		AddNote(note.New("C", 3), 0, 1).
		AddNote(note.New("D", 3), 1, 1).
		AddNote(note.New("E", 3), 2, 1).
		AddNote(note.New("C", 3), 3, 1)

	theme2 := score.NewMeasure(tempo, signature).
		AddNote(note.New("E", 3), 0, 1).
		AddNote(note.New("F", 3), 1, 1).
		AddNote(note.New("G", 3), 2, 2)

	theme3 := score.NewMeasure(tempo, signature).
		AddNote(note.New("G", 3), 0, 0.5).
		AddNote(note.New("A", 3), 0.5, 0.5).
		AddNote(note.New("G", 3), 1, 0.5).
		AddNote(note.New("F", 3), 1.5, 0.5).
		AddNote(note.New("E", 3), 2, 1).
		AddNote(note.New("C", 3), 3, 1)

	theme4 := score.NewMeasure(tempo, signature).
		AddNote(note.New("C", 3), 0, 1).
		AddNote(note.New("G", 2), 1, 1).
		AddNote(note.New("C", 3), 2, 2)

	var measures []*score.Measure
	measures = append(measures, score.Repeat(theme1, 2)...)
	measures = append(measures, score.Repeat(theme2, 2)...)
	measures = append(measures, score.Repeat(theme3, 2)...)
	measures = append(measures, score.Repeat(theme4, 2)...)

	return score.NewTrack(measures...)
}

// VaderJacobRound is the same line entering two measures later, the way
// the tune is sung as a round.
func VaderJacobRound() *score.Track {
	rest := score.NewMeasure(timing.MustTempo(120), timing.MustSignature(4, 4))

	measures := score.Repeat(rest, 2)
	measures = append(measures, VaderJacob().Measures...)

	return score.NewTrack(measures...)
}

// Library returns the built-in songs keyed by name.
func Library() map[string]*score.Score {
	vaderJacob := score.NewScore()
	vaderJacob.AddTrack("lead", VaderJacob())
	vaderJacob.AddTrack("round", VaderJacobRound())

	return map[string]*score.Score{
		"vader-jacob": vaderJacob,
	}
}
