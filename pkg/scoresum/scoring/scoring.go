// Package scoring computes aggregate scores from extracted subtotals.
package scoring

import "github.com/ukaji3/scoresum-go/pkg/scoresum/models"

// Weights are the category weights of the composite S score.
type Weights struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

// DefaultWeights returns S = A + 0.85*B + 0.10*C + 0.05*D.
func DefaultWeights() Weights {
	return Weights{A: 1, B: 0.85, C: 0.10, D: 0.05}
}

// Compute derives the aggregate scores of rec. Missing subtotals count as 0.
// A and B have no source in the student workbook and are always 0.
// No rounding is applied.
func Compute(rec *models.StudentRecord, w Weights) models.Scores {
	var s models.Scores

	for _, c := range rec.C {
		s.C += c.OrZero()
	}

	// D6 is a deduction.
	for _, d := range rec.D[:5] {
		s.D += d.OrZero()
	}
	s.D -= rec.D[5].OrZero()

	s.S = s.A*w.A + s.B*w.B + s.C*w.C + s.D*w.D
	return s
}
