// Package domain defines the types and interfaces for the samples service
package domain

// RecordInput is a single detection observation to persist
type RecordInput struct {
	Handle  int64
	Lang    string
	Script  string
	TextLen int
	Snippet string
}

// Sample is one recorded detection read back from storage
type Sample struct {
	ID        string
	Handle    int64
	Lang      string
	Script    string
	TextLen   int
	Snippet   string
	CreatedAt string
}
