package dto

import "github.com/wkalungi/sponsorbase/internal/app/models"

// ChildListResponse represents the response for a paginated list of children
type ChildListResponse struct {
	Children   []*models.Child `json:"children"`
	Pagination PaginationInfo  `json:"pagination"`
}

// ImportRowFault describes a row the importer could not map.
type ImportRowFault struct {
	Row    int    `json:"row" example:"4"` // 0-indexed sheet row, header excluded
	Reason string `json:"reason" example:"short row: got 12 cells, want 37"`
}

// ImportResultResponse summarizes a completed bulk import.
type ImportResultResponse struct {
	Imported int              `json:"imported" example:"48"`
	Skipped  int              `json:"skipped" example:"2"`
	Invalid  []ImportRowFault `json:"invalid,omitempty"`
}
