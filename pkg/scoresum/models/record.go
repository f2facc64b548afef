package models

// StudentRecord holds the identity fields and labelled subtotals read from
// one student's workbook.
type StudentRecord struct {
	// Name is the student name cell (may be empty).
	Name string `json:"name"`
	// StudentID is the raw text of the first non-empty student id cell (may be empty).
	StudentID string `json:"student_id"`
	// C holds the C1..C3 subtotals.
	C [3]Subtotal `json:"c"`
	// D holds the D1..D6 subtotals. D6 is a deduction.
	D [6]Subtotal `json:"d"`
}

// Scores holds the aggregates derived from a StudentRecord.
type Scores struct {
	// A and B are category scores not sourced from the student workbook; always 0.
	A float64 `json:"a"`
	B float64 `json:"b"`
	// C is C1+C2+C3.
	C float64 `json:"c"`
	// D is D1+D2+D3+D4+D5-D6.
	D float64 `json:"d"`
	// S is the weighted composite of A, B, C and D.
	S float64 `json:"s"`
}

// SummaryRow is one row written to the summary sheet.
type SummaryRow struct {
	// Row is the 1-based row index in the summary sheet.
	Row       int        `json:"row"`
	Name      string     `json:"name"`
	StudentID string     `json:"student_id"`
	C         [3]float64 `json:"c"`
	CTotal    float64    `json:"c_total"`
	D         [6]float64 `json:"d"`
	DTotal    float64    `json:"d_total"`
	S         float64    `json:"s"`
}
