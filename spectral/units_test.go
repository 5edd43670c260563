package spectral

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	q, err := Quantity{545, Gigahertz}.Convert(Hertz)
	assert.NoError(t, err)
	assert.InDelta(t, 545e9, q.Value, 1e-3)

	q, err = Quantity{100, Micron}.Convert(Meter)
	assert.NoError(t, err)
	assert.InDelta(t, 1e-4, q.Value, 1e-18)

	q, err = Quantity{1, MJyPerSr}.Convert(JyPerSr)
	assert.NoError(t, err)
	assert.InDelta(t, 1e6, q.Value, 1e-3)
}

func TestConvertRoundTrip(t *testing.T) {
	q0 := Quantity{3.7, MJyPerSr}
	q1, err := q0.Convert(WattPerM2HzSr)
	assert.NoError(t, err)
	q2, err := q1.Convert(MJyPerSr)
	assert.NoError(t, err)
	assert.InEpsilon(t, q0.Value, q2.Value, 1e-12)
}

func TestConvertMismatch(t *testing.T) {
	_, err := Quantity{1, Gigahertz}.Convert(Meter)
	assert.True(t, errors.Is(err, ErrUnitMismatch))
	_, err = Quantity{1, Kelvin}.Convert(MJyPerSr)
	assert.True(t, errors.Is(err, ErrUnitMismatch))
}
