package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frs/internal/domains/photo/model"
	"frs/internal/domains/photo/model/dto"
)

func TestPhotoResponse_FromModel(t *testing.T) {
	uploadedAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	photo := model.Photo{
		ID:         "8f1d",
		Directory:  "photo",
		ObjectName: "8f1d.png",
		URL:        "https://cdn.example.com/photo/8f1d.png",
		FileName:   "face.png",
		Type:       "image/png",
		Width:      640,
		Height:     480,
		Size:       2048,
		UploadedAt: uploadedAt,
	}

	var res dto.PhotoResponse
	res.FromModel(photo)

	assert.Equal(t, dto.PhotoResponse{
		ID:         "8f1d",
		URL:        "https://cdn.example.com/photo/8f1d.png",
		FileName:   "face.png",
		Type:       "image/png",
		Width:      640,
		Height:     480,
		Size:       2048,
		UploadedAt: "2024-03-01T10:30:00Z",
	}, res)
}
