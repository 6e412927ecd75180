package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	otelMocks "backoffice/infras/otel/mocks"
	bookingMocks "backoffice/internal/domains/booking/mocks"
	hotelMocks "backoffice/internal/domains/hotel/mocks"
	roomTypeMocks "backoffice/internal/domains/roomtype/mocks"
	"backoffice/internal/domains/roomtype/model"
	"backoffice/internal/domains/roomtype/model/dto"
	"backoffice/internal/domains/roomtype/service"
	"backoffice/shared/cache"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
)

type roomTypeFixture struct {
	repo        *roomTypeMocks.MockRoomType
	hotelRepo   *hotelMocks.MockHotel
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	svc         service.RoomType
}

func newRoomTypeFixture(t *testing.T) roomTypeFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return roomTypeFixture{
		repo:        mockRepo,
		hotelRepo:   mockHotelRepo,
		bookingRepo: mockBookingRepo,
		cache:       mockCache,
		svc:         service.New(mockRepo, mockHotelRepo, mockBookingRepo, cfg, mockCache, mockOtel),
	}
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestRoomTypeService_Create(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		HotelID:    "6b4a1c52-0000-0000-0000-000000000001",
		Name:       "Deluxe Double",
		Capacity:   2,
		TotalRooms: 20,
		BasePrice:  150,
	}

	t.Run("hotel not found", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Create(testCtx(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful creation", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Create(testCtx(), req)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		err := f.svc.Create(testCtx(), req)

		assert.Error(t, err)
	})
}

func TestRoomTypeService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: "rt-1", HotelID: "hotel-1", Name: "Deluxe"}, nil)

		res, err := f.svc.Get(testCtx(), "rt-1")

		assert.NoError(t, err)
		assert.Equal(t, "Deluxe", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := f.svc.Get(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypeService_GetByHotel(t *testing.T) {
	t.Run("hotel not found", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.GetByHotel(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("lists room types of the hotel", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.RoomType{
				{ID: "rt-1", HotelID: "hotel-1", Name: "Deluxe"},
				{ID: "rt-2", HotelID: "hotel-1", Name: "Suite"},
			}, nil)

		res, err := f.svc.GetByHotel(testCtx(), "hotel-1")

		assert.NoError(t, err)
		assert.Len(t, res.RoomTypes, 2)
		assert.Equal(t, 2, res.TotalData)
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("blocked by bookings", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Delete(testCtx(), "rt-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("successful delete", func(t *testing.T) {
		f := newRoomTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(testCtx(), "rt-1")

		assert.NoError(t, err)
	})
}
