package photo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frs/infras/otel"
	"frs/internal/domains/photo/model/dto"
	"frs/internal/domains/photo/service"
	"frs/shared/constant"
	"frs/shared/failure"
	"frs/shared/validator"
	"frs/transport/http/response"
)

type Handler struct {
	service service.Photo
	otel    otel.Otel
}

func New(service service.Photo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/photos", func(routerGroup chi.Router) {
		routerGroup.Get("/types", handler.GetImageTypes)
		routerGroup.Post("/", handler.UploadPhoto)
		routerGroup.Post("/base64", handler.UploadBase64)
		routerGroup.Get("/{id}", handler.GetPhotoByID)
		routerGroup.Delete("/{id}", handler.DeletePhoto)
	})
}

// GetImageTypes lists the accepted image MIME types.
// @Summary Accepted image types
// @Tags Photo
// @Produce json
// @Success 200 {object} dto.ImageTypesResponse
// @Router /v1/photos/types [get]
func (handler *Handler) GetImageTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImageTypes")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.ImageTypes(ctx))
}

// UploadPhoto stores a multipart image upload.
// @Summary Upload a photo
// @Description Accepts the file only when its declared Content-Type is an accepted image type.
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 201 {object} dto.PhotoResponse
// @Failure 400 {object} response.Error
// @Failure 413 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos [post]
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo uploaded " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UploadBase64 stores an image sent as a data URL.
// @Summary Upload a photo as a data URL
// @Tags Photo
// @Accept json
// @Produce json
// @Param request body dto.UploadBase64Request true "Data URL upload"
// @Success 201 {object} dto.PhotoResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos/base64 [post]
func (handler *Handler) UploadBase64(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadBase64")
	defer scope.End()

	req := dto.UploadBase64Request{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadBase64(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo uploaded " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPhotoByID returns the record of a stored photo.
// @Summary Get a photo by ID
// @Tags Photo
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} dto.PhotoResponse
// @Failure 404 {object} response.Error
// @Router /v1/photos/{id} [get]
func (handler *Handler) GetPhotoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get photo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeletePhoto removes a stored photo.
// @Summary Delete a photo by ID
// @Tags Photo
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/photos/{id} [delete]
func (handler *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo deleted " + id)

	response.WithMessage(w, http.StatusOK, "Photo deleted successfully")
}
