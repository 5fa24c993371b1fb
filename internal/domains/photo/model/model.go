package model

import "time"

const (
	EntityName = "photo"
)

// Photo is the stored record of an accepted upload.
type Photo struct {
	ID         string    `json:"id"`
	Directory  string    `json:"directory"`
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	FileName   string    `json:"file_name"`
	Type       string    `json:"type"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
