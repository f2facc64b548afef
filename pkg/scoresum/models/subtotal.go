// Package models defines data structures for score summarisation.
package models

// Subtotal is the value found below a subtotal label cell.
// A zero Subtotal is Missing: the label was not found or the cell below it was empty.
type Subtotal struct {
	// Found reports whether a numeric value was read below the label.
	Found bool `json:"found"`
	// Value is the numeric value, meaningful only when Found is true.
	Value float64 `json:"value"`
}

// Found returns a Subtotal holding v.
func Found(v float64) Subtotal {
	return Subtotal{Found: true, Value: v}
}

// Missing returns a Subtotal with no value.
func Missing() Subtotal {
	return Subtotal{}
}

// OrZero folds a Missing subtotal to 0.
func (s Subtotal) OrZero() float64 {
	if !s.Found {
		return 0
	}
	return s.Value
}
