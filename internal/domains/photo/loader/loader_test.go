package loader_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frs/internal/domains/photo/loader"
)

func newResolver(t *testing.T) loader.Resolver {
	t.Helper()

	resolver, err := loader.New([]string{loader.TypeJPEG, loader.TypePNG, loader.TypeGIF})
	require.NoError(t, err)

	return resolver
}

func TestResolver_AcceptedTypes(t *testing.T) {
	resolver := newResolver(t)

	for _, value := range resolver.ImageTypes() {
		file := &loader.Descriptor{Name: "image", Mime: value}

		assert.NotNil(t, resolver.Loader(file), value)
	}
}

func TestResolver_RejectedTypes(t *testing.T) {
	resolver := newResolver(t)

	tests := []struct {
		name string
		mime string
	}{
		{name: "near miss image subtype", mime: "image/x-jg"},
		{name: "non image type", mime: "text/html"},
		{name: "alias is not resolved", mime: "image/jpg"},
		{name: "match is case sensitive", mime: "IMAGE/PNG"},
		{name: "no wildcard", mime: "image/*"},
		{name: "empty type", mime: ""},
		{name: "registered but not accepted", mime: loader.TypeWEBP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, resolver.Loader(&loader.Descriptor{Name: "file", Mime: tt.mime}))
		})
	}
}

func TestResolver_NilFile(t *testing.T) {
	resolver := newResolver(t)

	assert.Nil(t, resolver.Loader(nil))

	var missing *loader.Descriptor
	assert.NotPanics(t, func() {
		assert.Nil(t, resolver.Loader(missing))
	})
	assert.Empty(t, missing.Type())
}

func TestResolver_Idempotent(t *testing.T) {
	resolver := newResolver(t)
	accepted := &loader.Descriptor{Mime: loader.TypePNG}
	alias := &loader.Descriptor{Mime: "image/jpg"}

	for i := 0; i < 5; i++ {
		assert.NotNil(t, resolver.Loader(accepted))
		assert.Nil(t, resolver.Loader(alias))
	}
}

func TestResolver_ImageTypesIsACopy(t *testing.T) {
	resolver := newResolver(t)

	types := resolver.ImageTypes()
	types[0] = "text/html"

	assert.Equal(t, []string{loader.TypeJPEG, loader.TypePNG, loader.TypeGIF}, resolver.ImageTypes())
	assert.Nil(t, resolver.Loader(&loader.Descriptor{Mime: "text/html"}))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		types    []string
		expected []string
		wantErr  bool
	}{
		{
			name:     "empty falls back to defaults",
			types:    nil,
			expected: loader.DefaultTypes,
		},
		{
			name:     "duplicates collapse",
			types:    []string{loader.TypePNG, loader.TypePNG, loader.TypeWEBP},
			expected: []string{loader.TypePNG, loader.TypeWEBP},
		},
		{
			name:    "uppercase is malformed",
			types:   []string{"Image/PNG"},
			wantErr: true,
		},
		{
			name:    "missing subtype",
			types:   []string{"image"},
			wantErr: true,
		},
		{
			name:    "no decoder",
			types:   []string{"image/x-jg"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := loader.New(tt.types)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, resolver.ImageTypes())
		})
	}
}

func TestLoader_Decodes(t *testing.T) {
	resolver := newResolver(t)

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	load := resolver.Loader(&loader.Descriptor{Mime: loader.TypePNG, Content: buf.Bytes()})
	require.NotNil(t, load)

	decoded, err := load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
}

func TestFromFileHeader(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "face.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{loader.TypePNG}},
	}

	assert.Equal(t, loader.TypePNG, loader.FromFileHeader(header).Type())
	assert.Empty(t, loader.FromFileHeader(nil).Type())
}

func TestFromDataURL(t *testing.T) {
	assert.Equal(t, loader.TypeGIF, loader.FromDataURL("data:image/gif;base64,R0lGOD").Type())
	assert.Empty(t, loader.FromDataURL("R0lGOD").Type())
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", loader.Extension(loader.TypeJPEG))
	assert.True(t, loader.Supported(loader.TypeTIFF))
	assert.False(t, loader.Supported("text/html"))
}
