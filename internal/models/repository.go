package models

import "time"

// RepositoryRecord is the part of an upstream repository the collector filters on.
type RepositoryRecord struct {
	Name      string    `json:"name"`
	FullName  string    `json:"full_name"`
	Owner     string    `json:"owner"`
	UpdatedAt time.Time `json:"updated_at"`
}
