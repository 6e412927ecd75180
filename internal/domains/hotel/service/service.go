package service

import (
	"context"
	"fmt"
	"strings"

	"backoffice/config"
	"backoffice/infras/otel"
	"backoffice/infras/s3"
	"backoffice/internal/domains/hotel/model"
	"backoffice/internal/domains/hotel/model/dto"
	"backoffice/internal/domains/hotel/repository"
	roomTypeModel "backoffice/internal/domains/roomtype/model"
	roomTypeDto "backoffice/internal/domains/roomtype/model/dto"
	roomTypeRepo "backoffice/internal/domains/roomtype/repository"
	"backoffice/shared"
	"backoffice/shared/base64"
	"backoffice/shared/cache"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
	cacheCountHotel  = "hotel:count"

	imageDirectory = "hotels"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Hotel
	roomTypeRepo roomTypeRepo.RoomType
	cfg          *config.Config
	cache        cache.RedisCache
	s3           s3.S3
	otel         otel.Otel
}

func New(repo repository.Hotel, roomTypeRepo roomTypeRepo.RoomType, cfg *config.Config, cache cache.RedisCache, s3Client s3.S3, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		cache:        cache,
		s3:           s3Client,
		otel:         otel,
	}
}

// uploadImage stores a base64 data URL image on S3 and returns its public URL.
func (s *serviceImpl) uploadImage(ctx context.Context, image string) (string, error) {
	contentType := base64.GetContentType(image)

	payload, err := base64.Decode(image)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString("invalid image payload") // nolint:wrapcheck
	}

	ext := strings.TrimPrefix(contentType, "image/")
	fileName := fmt.Sprintf("%s.%s", uuid.NewString(), ext)

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, imageDirectory, fileName, contentType, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hotel image")

		return constant.Empty, fmt.Errorf("failed to upload hotel image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	bucket := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucket, url)
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, bucket, constant.Empty, objectName); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to delete hotel image")
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	hotel := req.ToModel(user)

	if req.Image != constant.Empty {
		hotel.Image, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			return err
		}
	}

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		// don't leave an orphaned object behind
		s.deleteImage(ctx, hotel.Image)

		return fmt.Errorf("failed to create hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

// attachRoomTypes loads the room types for the given hotels in one query
// and distributes them over the responses.
func (s *serviceImpl) attachRoomTypes(ctx context.Context, hotels []dto.HotelResponse) error {
	if len(hotels) == 0 {
		return nil
	}

	ids := make([]string, len(hotels))
	for i, hotel := range hotels {
		ids[i] = hotel.ID
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomTypeModel.FieldHotelID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    roomTypeModel.TableName,
			},
		},
	}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomTypeModel.FieldName, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		return fmt.Errorf("failed to get room types for hotels: %w", err)
	}

	byHotel := map[string][]roomTypeModel.RoomType{}
	for _, roomType := range roomTypes {
		byHotel[roomType.HotelID] = append(byHotel[roomType.HotelID], roomType)
	}

	for i := range hotels {
		for _, roomType := range byHotel[hotels[i].ID] {
			var res roomTypeDto.RoomTypeResponse
			res.FromModel(roomType)

			hotels[i].RoomTypes = append(hotels[i].RoomTypes, res)
		}
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err = s.attachRoomTypes(ctx, res.Hotels); err != nil {
		log.Error().Err(err).Msg("failed to attach room types")

		return dto.GetHotelsResponse{}, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	res.FromModel(hotel)

	hotels := []dto.HotelResponse{res}
	if err = s.attachRoomTypes(ctx, hotels); err != nil {
		log.Error().Err(err).Msg("failed to attach room types")

		return dto.HotelResponse{}, err
	}

	res = hotels[0]

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	hotel, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	oldImage := constant.Empty

	if req.Image != constant.Empty {
		oldImage = hotel.Image

		req.Image, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		s.deleteImage(ctx, req.Image)

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.deleteImage(c, oldImage)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if shared.PqErrorCode(err) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("hotel has room types with bookings") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.deleteImage(c, hotel.Image)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}
