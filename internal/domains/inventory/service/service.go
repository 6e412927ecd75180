package service

import (
	"context"
	"fmt"
	"time"

	"backoffice/config"
	"backoffice/infras/otel"
	"backoffice/internal/domains/inventory/model"
	"backoffice/internal/domains/inventory/model/dto"
	"backoffice/internal/domains/inventory/repository"
	roomTypeModel "backoffice/internal/domains/roomtype/model"
	roomTypeRepo "backoffice/internal/domains/roomtype/repository"
	"backoffice/shared"
	"backoffice/shared/cache"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/failure"
	"backoffice/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllInventory = "inventory:gets"
)

type Inventory interface {
	GetByRoomType(ctx context.Context, roomTypeID string, start, end time.Time) (dto.GetInventoriesResponse, error)
	Update(ctx context.Context, req dto.UpdateInventoryRequest) error
	Generate(ctx context.Context, req dto.GenerateInventoryRequest) error
}

type serviceImpl struct {
	repo         repository.Inventory
	roomTypeRepo roomTypeRepo.RoomType
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Inventory, roomTypeRepo roomTypeRepo.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) getRoomType(ctx context.Context, roomTypeID string) (roomTypeModel.RoomType, error) {
	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(roomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return roomType, nil
}

func rangeFilter(roomTypeID string, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomTypeID,
				Value:    roomTypeID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "start_date",
				Field:    model.FieldDate,
				Value:    start,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "end_date",
				Field:    model.FieldDate,
				Value:    end,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetByRoomType(ctx context.Context, roomTypeID string, start, end time.Time) (res dto.GetInventoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if end.Before(start) {
		return res, failure.InvalidDateRangeParam // nolint:wrapcheck
	}

	if _, err = s.getRoomType(ctx, roomTypeID); err != nil {
		return res, err
	}

	filter := rangeFilter(roomTypeID, start, end)
	params := gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInventory, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventories")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventories")

		return res, fmt.Errorf("failed to get inventories: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventories to cache")
		}
	}()

	return res, nil
}

// Update overwrites the sellable room count and nightly price of one ledger
// day. A day that has never been generated is a 404, not an upsert.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInventoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := req.ParseDate()
	if err != nil {
		return failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if _, err = s.getRoomType(ctx, req.RoomTypeID); err != nil {
		return err
	}

	filter := rangeFilter(req.RoomTypeID, date, date)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inventory exists")

		return fmt.Errorf("failed to check if inventory exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory not found for date") // nolint:wrapcheck
	}

	mod := map[string]any{
		model.FieldAvailableRooms: req.AvailableRooms,
		model.FieldPricePerNight:  req.Price,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user,
	}

	if err = s.repo.Update(ctx, mod, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inventory")

		return fmt.Errorf("failed to update inventory: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInventory)
	}()

	return nil
}

// Generate creates ledger rows for every date in the inclusive range that
// does not have one yet. Existing rows are left untouched, so the call is
// idempotent.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateInventoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := req.ParseDates()
	if err != nil {
		return failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if end.Before(start) {
		return failure.InvalidDateRangeParam // nolint:wrapcheck
	}

	roomType, err := s.getRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, rangeFilter(req.RoomTypeID, start, end), model.FieldDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get existing inventories")

		return fmt.Errorf("failed to get existing inventories: %w", err)
	}

	taken := map[string]bool{}
	for _, inv := range existing {
		taken[inv.Date.Format(constant.DateOnlyFormat)] = true
	}

	now := timezone.Now()
	rows := []model.Inventory{}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if taken[date.Format(constant.DateOnlyFormat)] {
			continue
		}

		rows = append(rows, dto.NewLedgerRow(req.RoomTypeID, date, roomType.TotalRooms, roomType.BasePrice, user, now))
	}

	if len(rows) == 0 {
		return nil
	}

	if err = s.repo.InsertBulk(ctx, rows); err != nil {
		if shared.PqErrorCode(err) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("inventory already generated for date") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to generate inventories")

		return fmt.Errorf("failed to generate inventories: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInventory)
	}()

	return nil
}
