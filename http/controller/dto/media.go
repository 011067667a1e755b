package dto

import "github.com/google/uuid"

// UploadedFileDTO is the per-file summary returned by the media upload route.
type UploadedFileDTO struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Type         string    `json:"type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
}
