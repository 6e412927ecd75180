package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	otelMocks "backoffice/infras/otel/mocks"
	inventoryMocks "backoffice/internal/domains/inventory/mocks"
	"backoffice/internal/domains/inventory/model"
	"backoffice/internal/domains/inventory/model/dto"
	"backoffice/internal/domains/inventory/service"
	roomTypeMocks "backoffice/internal/domains/roomtype/mocks"
	roomTypeModel "backoffice/internal/domains/roomtype/model"
	"backoffice/shared/cache"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
)

type inventoryFixture struct {
	repo         *inventoryMocks.MockInventory
	roomTypeRepo *roomTypeMocks.MockRoomType
	cache        *cacheMocks.MockRedisCache
	svc          service.Inventory
}

func newInventoryFixture(t *testing.T) inventoryFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := inventoryMocks.NewMockInventory(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return inventoryFixture{
		repo:         mockRepo,
		roomTypeRepo: mockRoomTypeRepo,
		cache:        mockCache,
		svc:          service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mockOtel),
	}
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func date(value string) time.Time {
	parsed, _ := time.Parse(constant.DateOnlyFormat, value)

	return parsed
}

var testRoomType = roomTypeModel.RoomType{
	ID:         "rt-1",
	HotelID:    "hotel-1",
	Name:       "Deluxe",
	Capacity:   2,
	TotalRooms: 20,
	BasePrice:  150,
}

func TestInventoryService_GetByRoomType(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		f := newInventoryFixture(t)

		_, err := f.svc.GetByRoomType(testCtx(), "rt-1", date("2026-09-10"), date("2026-09-01"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room type not found", func(t *testing.T) {
		f := newInventoryFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)

		_, err := f.svc.GetByRoomType(testCtx(), "missing", date("2026-09-01"), date("2026-09-10"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("returns rows ordered by date", func(t *testing.T) {
		f := newInventoryFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testRoomType, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Inventory{
				{ID: "inv-1", RoomTypeID: "rt-1", Date: date("2026-09-01"), AvailableRooms: 20, PricePerNight: 150},
				{ID: "inv-2", RoomTypeID: "rt-1", Date: date("2026-09-02"), AvailableRooms: 19, BookedRooms: 1, PricePerNight: 150},
			}, nil)

		res, err := f.svc.GetByRoomType(testCtx(), "rt-1", date("2026-09-01"), date("2026-09-02"))

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, "2026-09-01", res.Inventories[0].Date)
	})
}

func TestInventoryService_Update(t *testing.T) {
	validReq := dto.UpdateInventoryRequest{
		RoomTypeID:     "rt-1",
		Date:           "2026-09-01",
		AvailableRooms: 15,
		Price:          175,
	}

	t.Run("invalid date", func(t *testing.T) {
		f := newInventoryFixture(t)

		req := validReq
		req.Date = "01-09-2026"

		err := f.svc.Update(testCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing ledger row", func(t *testing.T) {
		f := newInventoryFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testRoomType, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(testCtx(), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		f := newInventoryFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testRoomType, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.Equal(t, 15, mod[model.FieldAvailableRooms])
				assert.Equal(t, 175.0, mod[model.FieldPricePerNight])

				return nil
			})

		err := f.svc.Update(testCtx(), validReq)

		assert.NoError(t, err)
	})
}

func TestInventoryService_Generate(t *testing.T) {
	validReq := dto.GenerateInventoryRequest{
		RoomTypeID: "rt-1",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
	}

	t.Run("invalid range", func(t *testing.T) {
		f := newInventoryFixture(t)

		req := validReq
		req.StartDate = "2026-09-10"

		err := f.svc.Generate(testCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room type not found", func(t *testing.T) {
		f := newInventoryFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)

		err := f.svc.Generate(testCtx(), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("skips existing dates", func(t *testing.T) {
		f := newInventoryFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testRoomType, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Inventory{
				{Date: date("2026-09-02")},
				{Date: date("2026-09-04")},
			}, nil)
		f.repo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []model.Inventory) error {
				assert.Len(t, rows, 3)
				assert.Equal(t, "2026-09-01", rows[0].Date.Format(constant.DateOnlyFormat))
				assert.Equal(t, "2026-09-03", rows[1].Date.Format(constant.DateOnlyFormat))
				assert.Equal(t, "2026-09-05", rows[2].Date.Format(constant.DateOnlyFormat))

				for _, row := range rows {
					assert.Equal(t, 0, row.BookedRooms)
					assert.Equal(t, testRoomType.TotalRooms, row.AvailableRooms)
					assert.Equal(t, testRoomType.BasePrice, row.PricePerNight)
				}

				return nil
			})

		err := f.svc.Generate(testCtx(), validReq)

		assert.NoError(t, err)
	})

	t.Run("all dates already generated", func(t *testing.T) {
		f := newInventoryFixture(t)

		req := dto.GenerateInventoryRequest{
			RoomTypeID: "rt-1",
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-02",
		}

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testRoomType, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Inventory{
				{Date: date("2026-09-01")},
				{Date: date("2026-09-02")},
			}, nil)

		err := f.svc.Generate(testCtx(), req)

		assert.NoError(t, err)
	})
}
