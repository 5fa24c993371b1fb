package dto

import (
	"mime/multipart"

	"frs/internal/domains/photo/model"
	"frs/shared/constant"
)

type ImageTypesResponse struct {
	Types []string `json:"types"`
}

type UploadPhotoRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required"`
	ImageFile multipart.File        `json:"-"`
}

type UploadBase64Request struct {
	Image    string `json:"image"     validate:"required,datauri"`
	FileName string `json:"file_name" validate:"omitempty,max=255"`
}

type PhotoResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	FileName   string `json:"file_name"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploaded_at"`
}

func (r *PhotoResponse) FromModel(m model.Photo) {
	r.ID = m.ID
	r.URL = m.URL
	r.FileName = m.FileName
	r.Type = m.Type
	r.Width = m.Width
	r.Height = m.Height
	r.Size = m.Size
	r.UploadedAt = m.UploadedAt.Format(constant.DateFormat)
}
