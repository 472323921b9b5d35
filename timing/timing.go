package timing

import (
	"fmt"
	"time"
)

// Duration is an absolute span of time in seconds. It is a plain value;
// arithmetic always produces a new Duration.
type Duration float64

func (d Duration) Add(other Duration) Duration {
	return d + other
}

func (d Duration) Scale(factor float64) Duration {
	return d * Duration(factor)
}

func (d Duration) Seconds() float64 {
	return float64(d)
}

// AsTime converts to a time.Duration for sleeping and tick conversion.
func (d Duration) AsTime() time.Duration {
	return time.Duration(float64(d) * float64(time.Second))
}

func (d Duration) String() string {
	return fmt.Sprintf("%gs", float64(d))
}

// FromBeats converts a beat count to an absolute span at the given tempo.
// Negative beat counts are left to caller validation.
func FromBeats(beats float64, tempo Tempo) Duration {
	return tempo.QuarterNote().Scale(beats)
}

// Tempo is a beats-per-minute descriptor. Build one with NewTempo or
// MustTempo so a non-positive BPM can never reach the arithmetic below.
type Tempo struct {
	BPM float64
}

func NewTempo(bpm float64) (Tempo, error) {
	if bpm <= 0 {
		return Tempo{}, fmt.Errorf("tempo must be positive, got %v", bpm)
	}
	return Tempo{BPM: bpm}, nil
}

func MustTempo(bpm float64) Tempo {
	tempo, err := NewTempo(bpm)
	if err != nil {
		panic(err.Error())
	}
	return tempo
}

// QuarterNote is the span of one quarter note at this tempo.
func (t Tempo) QuarterNote() Duration {
	return Duration(60.0 / t.BPM)
}

func (t Tempo) String() string {
	return fmt.Sprintf("%g bpm", t.BPM)
}

// Signature is a time signature.
type Signature struct {
	Numerator   int
	Denominator int
}

func NewSignature(numerator, denominator int) (Signature, error) {
	if numerator <= 0 || denominator <= 0 {
		return Signature{}, fmt.Errorf("invalid time signature %v/%v", numerator, denominator)
	}
	return Signature{Numerator: numerator, Denominator: denominator}, nil
}

func MustSignature(numerator, denominator int) Signature {
	signature, err := NewSignature(numerator, denominator)
	if err != nil {
		panic(err.Error())
	}
	return signature
}

// NumQuarterNotes is the number of quarter-note beats in one measure
// under this signature, e.g. 4/4 -> 4 and 6/8 -> 3.
func (s Signature) NumQuarterNotes() float64 {
	return float64(s.Numerator) * 4.0 / float64(s.Denominator)
}

func (s Signature) String() string {
	return fmt.Sprintf("%d/%d", s.Numerator, s.Denominator)
}
