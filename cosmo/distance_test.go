package cosmo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable(t *testing.T) *Table {
	tab, err := NewTable(
		[]float64{0, 1000, 2000, 3000, 4000},
		[]float64{0, 0.25, 0.55, 0.9, 1.3},
	)
	assert.NoError(t, err)
	return tab
}

func TestTableInterpolates(t *testing.T) {
	tab := testTable(t)

	z, err := tab.Redshift(1000)
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, z, 1e-10)

	z, err = tab.Redshift(1500)
	assert.NoError(t, err)
	assert.InDelta(t, 0.4, z, 1e-10)

	z, err = tab.Redshift(0)
	assert.NoError(t, err)
	assert.InDelta(t, 0, z, 1e-10)

	z, err = tab.Redshift(4000)
	assert.NoError(t, err)
	assert.InDelta(t, 1.3, z, 1e-10)
}

func TestTableOutOfRange(t *testing.T) {
	tab := testTable(t)

	_, err := tab.Redshift(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = tab.Redshift(4000.001)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestTableDomain(t *testing.T) {
	tab := testTable(t)
	low, high := tab.Domain()
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 4000.0, high)
}

func TestTableRejectsBadInput(t *testing.T) {
	_, err := NewTable([]float64{0, 1}, []float64{0})
	assert.Error(t, err)

	_, err = NewTable([]float64{0}, []float64{0})
	assert.Error(t, err)

	_, err = NewTable([]float64{0, 2, 1}, []float64{0, 1, 2})
	assert.Error(t, err)

	_, err = NewTable([]float64{0, 1, 2}, []float64{0, 1, 0.5})
	assert.Error(t, err)
}
