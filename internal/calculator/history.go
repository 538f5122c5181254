package calculator

import "slices"

// Record is a completed calculation
type Record struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

// History is the chronological log of completed calculations
type History struct {
	records []Record
}

// Append adds a record to the end of the log
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Records returns a copy of the log, oldest first
func (h *History) Records() []Record {
	return slices.Clone(h.records)
}

// Len returns the number of records
func (h *History) Len() int {
	return len(h.records)
}

// Clear empties the log
func (h *History) Clear() {
	h.records = nil
}
