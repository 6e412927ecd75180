package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	s3Mocks "backoffice/infras/s3/mocks"
	"backoffice/infras/otel/mocks"
	hotelMocks "backoffice/internal/domains/hotel/mocks"
	"backoffice/internal/domains/hotel/model"
	"backoffice/internal/domains/hotel/model/dto"
	"backoffice/internal/domains/hotel/service"
	roomTypeMocks "backoffice/internal/domains/roomtype/mocks"
	roomTypeModel "backoffice/internal/domains/roomtype/model"
	"backoffice/shared/cache"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"
)

type hotelFixture struct {
	repo         *hotelMocks.MockHotel
	roomTypeRepo *roomTypeMocks.MockRoomType
	cache        *cacheMocks.MockRedisCache
	s3           *s3Mocks.MockS3
	svc          service.Hotel
}

func newHotelFixture(t *testing.T) hotelFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// writes invalidate caches on a detached goroutine
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return hotelFixture{
		repo:         mockRepo,
		roomTypeRepo: mockRoomTypeRepo,
		cache:        mockCache,
		s3:           mockS3,
		svc:          service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mockS3, mockOtel),
	}
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestHotelService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateHotelRequest
		setupMock func(f hotelFixture)
		wantErr   bool
	}{
		{
			name: "successful creation without image",
			req: dto.CreateHotelRequest{
				Name:       "Grand Hotel",
				Address:    "1 Main Street",
				City:       "Prague",
				StarRating: 4,
			},
			setupMock: func(f hotelFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateHotelRequest{
				Name:       "Grand Hotel",
				Address:    "1 Main Street",
				StarRating: 4,
			},
			setupMock: func(f hotelFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHotelFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(testCtx(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHotelService_Get(t *testing.T) {
	validHotel := model.Hotel{
		ID:         "hotel-1",
		Name:       "Grand Hotel",
		Address:    "1 Main Street",
		StarRating: 4,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user-id",
			ModifiedBy: "test-user-id",
		},
	}

	t.Run("found with room types", func(t *testing.T) {
		f := newHotelFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validHotel, nil)
		f.roomTypeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomTypeModel.RoomType{
				{ID: "rt-1", HotelID: "hotel-1", Name: "Deluxe", Capacity: 2, TotalRooms: 10, BasePrice: 120},
			}, nil)

		res, err := f.svc.Get(testCtx(), "hotel-1")

		assert.NoError(t, err)
		assert.Equal(t, "hotel-1", res.ID)
		assert.Len(t, res.RoomTypes, 1)
		assert.Equal(t, "Deluxe", res.RoomTypes[0].Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newHotelFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := f.svc.Get(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		f := newHotelFixture(t)

		err := f.svc.Update(testCtx(), dto.UpdateHotelRequest{}, "hotel-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("hotel not found", func(t *testing.T) {
		f := newHotelFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		err := f.svc.Update(testCtx(), dto.UpdateHotelRequest{Name: "New Name"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		f := newHotelFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "hotel-1"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(testCtx(), dto.UpdateHotelRequest{Name: "New Name"}, "hotel-1")

		assert.NoError(t, err)
	})
}

func TestHotelService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newHotelFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		err := f.svc.Delete(testCtx(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful delete", func(t *testing.T) {
		f := newHotelFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "hotel-1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), gomock.Any()).Return("").AnyTimes()

		err := f.svc.Delete(testCtx(), "hotel-1")

		assert.NoError(t, err)
	})
}
