// Package domain defines the types and interfaces for the eval service
package domain

import "langid/internal/core/classifier"

// Line is one corpus line, optionally labeled with an expected code
type Line struct {
	Label classifier.Code // empty when the corpus is unlabeled
	Text  string
}

// PairCount is one heuristic x reference confusion cell
type PairCount struct {
	Heuristic string `json:"heuristic"`
	Reference string `json:"reference"`
	Count     int    `json:"count"`
}

// LabelCount holds per-label tallies for labeled corpora
type LabelCount struct {
	Label          string `json:"label"`
	Total          int    `json:"total"`
	HeuristicRight int    `json:"heuristic_right"`
	ReferenceRight int    `json:"reference_right"`
}

// Report summarizes one eval run
type Report struct {
	Total     int         `json:"total"`
	Agreement int         `json:"agreement"`
	AgreeRate float64     `json:"agree_rate"`
	Pairs     []PairCount `json:"pairs"`

	Labeled           bool         `json:"labeled"`
	HeuristicAccuracy float64      `json:"heuristic_accuracy,omitempty"`
	ReferenceAccuracy float64      `json:"reference_accuracy,omitempty"`
	Labels            []LabelCount `json:"labels,omitempty"`
}
