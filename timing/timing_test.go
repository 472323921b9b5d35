package timing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuarterNoteLength(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Duration(0.5), MustTempo(120).QuarterNote())
	assert.Equal(Duration(1.0), MustTempo(60).QuarterNote())
}

func TestNonPositiveTempoRejected(t *testing.T) {
	assert := assert.New(t)
	_, err := NewTempo(0)
	assert.Error(err)
	_, err = NewTempo(-10)
	assert.Error(err)
}

func TestSignatureQuarterNotes(t *testing.T) {
	cases := []struct {
		numerator   int
		denominator int
		expected    float64
	}{
		{4, 4, 4.0},
		{3, 4, 3.0},
		{3, 8, 1.5},
		{6, 8, 3.0},
		{2, 2, 4.0},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v/%v has %v quarter notes", c.numerator, c.denominator, c.expected)
		t.Run(name, func(t *testing.T) {
			signature := MustSignature(c.numerator, c.denominator)
			if signature.NumQuarterNotes() != c.expected {
				t.Error()
			}
		})
	}
}

func TestInvalidSignatureRejected(t *testing.T) {
	assert := assert.New(t)
	_, err := NewSignature(0, 4)
	assert.Error(err)
	_, err = NewSignature(4, 0)
	assert.Error(err)
	_, err = NewSignature(-3, 4)
	assert.Error(err)
}

func TestFromBeats(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Duration(1.0), FromBeats(2, MustTempo(120)))
	assert.Equal(Duration(0.25), FromBeats(0.5, MustTempo(120)))
	assert.Equal(Duration(0), FromBeats(0, MustTempo(90)))
}

func TestDurationArithmetic(t *testing.T) {
	assert := assert.New(t)
	a := Duration(0.5)
	b := Duration(0.25)
	assert.Equal(Duration(0.75), a.Add(b))
	assert.Equal(a.Add(b), b.Add(a))
	assert.Equal(Duration(1.5), a.Scale(3))
	assert.True(b < a)
}

func TestAsTime(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(500*time.Millisecond, Duration(0.5).AsTime())
}

func TestDisplay(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0.5s", Duration(0.5).String())
	assert.Equal("120 bpm", MustTempo(120).String())
	assert.Equal("6/8", MustSignature(6, 8).String())
}
