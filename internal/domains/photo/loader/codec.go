package loader

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

const (
	TypeJPEG = "image/jpeg"
	TypePNG  = "image/png"
	TypeGIF  = "image/gif"
	TypeBMP  = "image/bmp"
	TypeTIFF = "image/tiff"
	TypeWEBP = "image/webp"
)

// Loader decodes the content of an accepted photo.
type Loader func(r io.Reader) (image.Image, error)

// DefaultTypes is the accepted set used when nothing is configured.
var DefaultTypes = []string{TypeJPEG, TypePNG, TypeGIF}

var codecs = map[string]Loader{
	TypeJPEG: jpeg.Decode,
	TypePNG:  png.Decode,
	TypeGIF:  gif.Decode,
	TypeBMP:  bmp.Decode,
	TypeTIFF: tiff.Decode,
	TypeWEBP: webp.Decode,
}

var extensions = map[string]string{
	TypeJPEG: ".jpg",
	TypePNG:  ".png",
	TypeGIF:  ".gif",
	TypeBMP:  ".bmp",
	TypeTIFF: ".tiff",
	TypeWEBP: ".webp",
}

// Supported reports whether a decoder is registered for the MIME type.
func Supported(mimeType string) bool {
	_, ok := codecs[mimeType]

	return ok
}

// Extension returns the file extension stored objects of this type get.
func Extension(mimeType string) string {
	return extensions[mimeType]
}
