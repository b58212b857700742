package db

import "time"

// PlayRecord represents a row in the plays table. Document is only populated
// when a single play is loaded.
type PlayRecord struct {
	ID         int64
	Name       string
	Court      string
	FrameCount int
	Document   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
