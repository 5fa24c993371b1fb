package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"frs/config"
	"frs/infras/otel"
	"frs/infras/s3"
	"frs/internal/domains/photo/loader"
	"frs/internal/domains/photo/model"
	"frs/internal/domains/photo/model/dto"
	"frs/shared"
	"frs/shared/base64"
	"frs/shared/cache"
	"frs/shared/constant"
	"frs/shared/failure"
	"frs/shared/timezone"
	"frs/shared/validator"
)

const (
	cacheGetPhoto = "photo:get"

	// Records live as long as their S3 object and are removed only by Delete.
	recordNoExpiry = 0

	defaultFileName = "image"
)

type Photo interface {
	ImageTypes(ctx context.Context) dto.ImageTypesResponse
	Upload(ctx context.Context, req dto.UploadPhotoRequest) (dto.PhotoResponse, error)
	UploadBase64(ctx context.Context, req dto.UploadBase64Request) (dto.PhotoResponse, error)
	Get(ctx context.Context, id string) (dto.PhotoResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	resolver loader.Resolver
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(resolver loader.Resolver, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Photo {
	return &serviceImpl{
		resolver: resolver,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) ImageTypes(ctx context.Context) dto.ImageTypesResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImageTypes")
	defer scope.End()

	return dto.ImageTypesResponse{Types: s.resolver.ImageTypes()}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadPhotoRequest) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.Finish(&err)

	file := loader.FromFileHeader(req.Image)

	// Reject before buffering the body.
	if s.resolver.Loader(file) == nil {
		log.Warn().Str("type", file.Type()).Msg("rejected photo with unsupported type")

		return res, failure.UnsupportedImageType
	}

	if err = s.checkSize(req.Image.Size); err != nil {
		return res, err
	}

	content, err := io.ReadAll(req.ImageFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded photo")

		return res, fmt.Errorf("failed to read uploaded photo: %w", err)
	}

	return s.store(ctx, &loader.Descriptor{
		Name:    shared.FileBaseName(req.Image.Filename),
		Mime:    file.Type(),
		Content: content,
	})
}

func (s *serviceImpl) UploadBase64(ctx context.Context, req dto.UploadBase64Request) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadBase64")
	defer scope.Finish(&err)

	file := loader.FromDataURL(req.Image)
	if s.resolver.Loader(file) == nil {
		log.Warn().Str("type", file.Type()).Msg("rejected base64 photo with unsupported type")

		return res, failure.UnsupportedImageType
	}

	content, err := base64.Decode(req.Image)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	name := shared.FileBaseName(req.FileName)
	if name == constant.Empty {
		name = defaultFileName + loader.Extension(file.Type())
	}

	return s.store(ctx, &loader.Descriptor{
		Name:    name,
		Mime:    file.Type(),
		Content: content,
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.Finish(&err)

	photo, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(photo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.Finish(&err)

	photo, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.s3.DeleteFile(ctx, photo.Directory, photo.ObjectName); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete photo from S3")

		return fmt.Errorf("failed to delete photo: %w", err)
	}

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetPhoto, id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete photo record")

		return fmt.Errorf("failed to delete photo record: %w", err)
	}

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (photo model.Photo, err error) {
	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheGetPhoto, id), &photo)
	if errors.Is(err, cache.Nil) {
		return photo, failure.NotFound("photo not found")
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get photo")

		return photo, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

func (s *serviceImpl) checkSize(size int64) error {
	maxSizeMB := s.cfg.Photo.MaxSizeMB
	if maxSizeMB <= 0 {
		return nil
	}

	if err := validator.ValidateVar(size, "maxfilesize="+strconv.FormatFloat(maxSizeMB, 'f', -1, 64)); err != nil {
		log.Warn().Int64("size", size).Float64("max_mb", maxSizeMB).Msg("rejected oversized photo")

		return failure.ImageTooLarge
	}

	return nil
}

// store decodes file with the loader its declared type resolves to and persists it.
func (s *serviceImpl) store(ctx context.Context, file *loader.Descriptor) (res dto.PhotoResponse, err error) {
	load := s.resolver.Loader(file)
	if load == nil {
		return res, failure.UnsupportedImageType
	}

	if err = s.checkSize(int64(len(file.Content))); err != nil {
		return res, err
	}

	if s.cfg.Photo.SniffContent {
		detected := mimetype.Detect(file.Content)
		if !detected.Is(file.Mime) {
			log.Warn().Str("declared", file.Mime).Str("detected", detected.String()).Msg("photo content does not match declared type")

			return res, failure.ContentTypeMismatch
		}
	}

	img, err := load(bytes.NewReader(file.Content))
	if err != nil {
		log.Warn().Err(err).Str("type", file.Mime).Msg("failed to decode photo")

		return res, failure.BadRequest(fmt.Errorf("failed to decode image: %w", err))
	}

	id := uuid.NewString()
	directory := s.cfg.Photo.Directory
	objectName := id + loader.Extension(file.Mime)

	url, err := s.s3.UploadFileBytes(ctx, directory, objectName, file.Mime, file.Content)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload photo to S3")

		return res, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := model.Photo{
		ID:         id,
		Directory:  directory,
		ObjectName: objectName,
		URL:        url,
		FileName:   file.Name,
		Type:       file.Mime,
		Width:      img.Bounds().Dx(),
		Height:     img.Bounds().Dy(),
		Size:       int64(len(file.Content)),
		UploadedAt: timezone.Now(),
	}

	if err = s.cache.Save(ctx, shared.BuildCacheKey(cacheGetPhoto, id), photo, recordNoExpiry); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to save photo record, removing uploaded object")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), directory, objectName); delErr != nil {
			log.Error().Err(delErr).Str("id", id).Msg("failed to remove orphaned photo object")
		}

		return res, fmt.Errorf("failed to save photo record: %w", err)
	}

	log.Info().Str("id", id).Str("type", file.Mime).Int("width", photo.Width).Int("height", photo.Height).Msg("photo stored")

	res.FromModel(photo)

	return res, nil
}
