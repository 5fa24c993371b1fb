package photo_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "frs/infras/otel/mocks"
	"frs/internal/domains/photo/mocks"
	"frs/internal/domains/photo/model/dto"
	"frs/internal/handlers/photo"
	"frs/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockPhoto) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockPhoto(ctrl)

	handler := photo.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func multipartBody(t *testing.T, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="face.png"`)
	partHeader.Set("Content-Type", contentType)

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_GetImageTypes(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ImageTypes(gomock.Any()).Return(dto.ImageTypesResponse{Types: []string{"image/jpeg", "image/png", "image/gif"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/photos/types", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"types":["image/jpeg","image/png","image/gif"]}}`, rec.Body.String())
}

func TestHandler_UploadPhoto(t *testing.T) {
	t.Run("passes the declared type to the service", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.UploadPhotoRequest) (dto.PhotoResponse, error) {
				assert.Equal(t, "image/png", req.Image.Header.Get("Content-Type"))
				assert.Equal(t, "face.png", req.Image.Filename)

				return dto.PhotoResponse{ID: "abc", Type: "image/png"}, nil
			})

		body, contentType := multipartBody(t, "image/png", []byte("png bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"abc"`)
	})

	t.Run("unsupported type maps to bad request", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(dto.PhotoResponse{}, failure.UnsupportedImageType)

		body, contentType := multipartBody(t, "text/html", []byte("<html></html>"))
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"unsupported image type"}`, rec.Body.String())
	})

	t.Run("missing form file", func(t *testing.T) {
		router, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/photos", strings.NewReader("not multipart"))
		req.Header.Set("Content-Type", "text/plain")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UploadBase64(t *testing.T) {
	t.Run("valid data url", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			UploadBase64(gomock.Any(), dto.UploadBase64Request{Image: "data:image/png;base64,iVBORw0KGgo=", FileName: "face.png"}).
			Return(dto.PhotoResponse{ID: "abc"}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/photos/base64",
			strings.NewReader(`{"image":"data:image/png;base64,iVBORw0KGgo=","file_name":"face.png"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("not a data url", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/photos/base64", strings.NewReader(`{"image":"hello"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetPhotoByID(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.PhotoResponse{}, failure.NotFound("photo not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/photos/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"photo not found"}`, rec.Body.String())
}

func TestHandler_DeletePhoto(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "abc").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/photos/abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Photo deleted successfully"}`, rec.Body.String())
}
