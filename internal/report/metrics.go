// Package report turns scoring totals into precision, recall and F1 and
// renders them.
package report

// Metrics holds evaluation results.
type Metrics struct {
	Matched   float64 `json:"matched" yaml:"matched"`
	Gold      float64 `json:"gold" yaml:"gold"`
	System    float64 `json:"system" yaml:"system"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
}

// FromCounts computes metrics from a matched score and the gold and system
// self-similarity totals. Empty denominators give 0.
func FromCounts(matched, gold, system float64) Metrics {
	m := Metrics{
		Matched: matched,
		Gold:    gold,
		System:  system,
	}
	if system > 0 {
		m.Precision = matched / system
	}
	if gold > 0 {
		m.Recall = matched / gold
	}
	if gold+system > 0 {
		m.F1 = 2 * matched / (gold + system)
	}
	return m
}

// Row is a named set of metrics, such as one span type or one similarity
// function.
type Row struct {
	Name    string  `json:"name" yaml:"name"`
	Metrics Metrics `json:"metrics" yaml:"metrics"`
}

// Report is the result of scoring one input.
type Report struct {
	File       string  `json:"file,omitempty" yaml:"file,omitempty"`
	Similarity string  `json:"similarity" yaml:"similarity"`
	Scheme     string  `json:"scheme" yaml:"scheme"`
	Blocks     int     `json:"blocks" yaml:"blocks"`
	Tokens     int     `json:"tokens" yaml:"tokens"`
	Overall    Metrics `json:"overall" yaml:"overall"`
	Types      []Row   `json:"types,omitempty" yaml:"types,omitempty"`
}
