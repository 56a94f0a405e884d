package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/infras/s3"
	"mesa/internal/domains/document/model"
	"mesa/internal/domains/document/model/dto"
	"mesa/internal/domains/document/repository"
	"mesa/shared"
	"mesa/shared/base64"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
)

const (
	cacheGetDocument    = "document:get"
	cacheGetAllDocument = "document:gets"
)

type Document interface {
	Create(ctx context.Context, req dto.CreateDocumentRequest, restaurantID string) (dto.DocumentResponse, error)
	GetAll(ctx context.Context, restaurantID string, params gDto.QueryParams) (dto.GetDocumentsResponse, error)
	Get(ctx context.Context, id string) (dto.DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Document
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Document, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Document {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func restaurantFilter(restaurantID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDocumentRequest, restaurantID string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	contentType := base64.GetContentType(req.File)
	if contentType == constant.Empty {
		return res, failure.BadRequestFromString("file must be a base64 data URL") // nolint:wrapcheck
	}

	fileData, err := base64.Decode(req.File)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode document payload")

		return res, failure.BadRequestFromString("file payload is not valid base64") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, req.Name, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload document to S3")

		return res, fmt.Errorf("failed to upload document to S3: %w", err)
	}

	document := req.ToModel(restaurantID, contentType, url, int64(len(fileData)), user)

	if err = s.repo.Insert(ctx, document); err != nil {
		return res, err
	}

	s.invalidateLists(ctx)

	res.FromModel(document)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, restaurantID string, params gDto.QueryParams) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := restaurantFilter(restaurantID)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDocument, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(models, params, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save documents to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDocument, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	document, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(document)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save document to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	document, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDocument, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete document cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, document.URL)
		if objectName == constant.Empty {
			log.Warn().Str("url", document.URL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete document from S3")
		}
	}()

	return nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Document, error) {
	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return document, fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return document, failure.NotFound("document not found") // nolint:wrapcheck
	}

	return document, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
	}()
}
