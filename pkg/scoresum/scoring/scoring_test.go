package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/scoresum-go/pkg/scoresum/models"
)

func record(c [3]float64, d [6]float64) *models.StudentRecord {
	rec := &models.StudentRecord{}
	for i, v := range c {
		rec.C[i] = models.Found(v)
	}
	for i, v := range d {
		rec.D[i] = models.Found(v)
	}
	return rec
}

func TestCompute(t *testing.T) {
	rec := record([3]float64{2, 3, 5}, [6]float64{1, 1, 1, 1, 1, 2})

	got := Compute(rec, DefaultWeights())

	assert.Equal(t, 10.0, got.C)
	assert.Equal(t, 3.0, got.D)
	assert.Zero(t, got.A)
	assert.Zero(t, got.B)
	assert.InDelta(t, 1.15, got.S, 1e-9)
}

func TestComputeNegativeD(t *testing.T) {
	rec := record([3]float64{}, [6]float64{1, 0, 0, 0, 0, 4.5})

	got := Compute(rec, DefaultWeights())

	assert.Equal(t, -3.5, got.D)
	assert.InDelta(t, -0.175, got.S, 1e-9)
}

func TestComputeMissingSubtotals(t *testing.T) {
	rec := &models.StudentRecord{}
	rec.C[1] = models.Found(4)
	rec.D[5] = models.Missing()

	got := Compute(rec, DefaultWeights())

	assert.Equal(t, 4.0, got.C)
	assert.Zero(t, got.D)
	assert.InDelta(t, 0.4, got.S, 1e-9)
}

func TestComputeSums(t *testing.T) {
	tests := []struct {
		c     [3]float64
		d     [6]float64
		wantC float64
		wantD float64
	}{
		{[3]float64{0, 0, 0}, [6]float64{0, 0, 0, 0, 0, 0}, 0, 0},
		{[3]float64{1.5, 2.25, 0.25}, [6]float64{2, 3, 4, 5, 6, 1}, 4, 19},
		{[3]float64{10, 20, 30}, [6]float64{0, 0, 0, 0, 0, 7}, 60, -7},
		{[3]float64{0.5, 0.5, 0}, [6]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, 1, 2},
	}

	for _, tt := range tests {
		got := Compute(record(tt.c, tt.d), DefaultWeights())
		assert.Equal(t, tt.wantC, got.C, "C for %v", tt.c)
		assert.Equal(t, tt.wantD, got.D, "D for %v", tt.d)
	}
}
