package dto

import (
	"backoffice/internal/domains/roomtype/model"
	"backoffice/shared"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	HotelID     string  `json:"hotel_id"    validate:"required,uuid"`
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Capacity    int     `json:"capacity"    validate:"required,gte=1,lte=10"`
	TotalRooms  int     `json:"total_rooms" validate:"required,gte=1,lte=1000"`
	BasePrice   float64 `json:"base_price"  validate:"required,gte=0,lte=10000"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		HotelID:     c.HotelID,
		Name:        c.Name,
		Description: c.Description,
		Capacity:    c.Capacity,
		TotalRooms:  c.TotalRooms,
		BasePrice:   c.BasePrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=500"`
	Capacity    int     `db:"capacity"    json:"capacity"    validate:"omitempty,gte=1,lte=10"`
	TotalRooms  int     `db:"total_rooms" json:"total_rooms" validate:"omitempty,gte=1,lte=1000"`
	BasePrice   float64 `db:"base_price"  json:"base_price"  validate:"omitempty,gte=0,lte=10000"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	TotalRooms  int     `json:"total_rooms"`
	BasePrice   float64 `json:"base_price"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.TotalRooms = model.TotalRooms
	r.BasePrice = model.BasePrice
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
