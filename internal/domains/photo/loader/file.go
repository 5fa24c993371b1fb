package loader

import (
	"mime/multipart"

	"frs/shared/base64"
	"frs/shared/constant"
)

// Descriptor is a plain in-memory file.
type Descriptor struct {
	Name    string
	Mime    string
	Content []byte
}

func (d *Descriptor) Type() string {
	if d == nil {
		return constant.Empty
	}

	return d.Mime
}

type fileHeader struct {
	header *multipart.FileHeader
}

// FromFileHeader exposes the Content-Type of a multipart part.
func FromFileHeader(header *multipart.FileHeader) File {
	return fileHeader{header: header}
}

func (f fileHeader) Type() string {
	if f.header == nil {
		return constant.Empty
	}

	return f.header.Header.Get(constant.RequestHeaderContentType)
}

type dataURL string

// FromDataURL exposes the media type of a data:<type>;base64, string.
func FromDataURL(data string) File {
	return dataURL(data)
}

func (d dataURL) Type() string {
	return base64.GetContentType(string(d))
}
