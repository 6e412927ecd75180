package dto

import (
	"backoffice/internal/domains/hotel/model"
	roomTypeDto "backoffice/internal/domains/roomtype/model/dto"
	"backoffice/shared"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Address     string `json:"address"     validate:"required,max=500"`
	City        string `json:"city"        validate:"omitempty,max=100"`
	Country     string `json:"country"     validate:"omitempty,max=100"`
	StarRating  int    `json:"star_rating" validate:"required,gte=1,lte=5"`
	Phone       string `json:"phone"       validate:"omitempty,max=20"`
	Email       string `json:"email"       validate:"omitempty,email,max=100"`
	Website     string `json:"website"     validate:"omitempty,max=200"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		Country:     c.Country,
		StarRating:  c.StarRating,
		Phone:       c.Phone,
		Email:       c.Email,
		Website:     c.Website,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,min=2,max=200"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Address     string `db:"address"     json:"address"     validate:"omitempty,max=500"`
	City        string `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Country     string `db:"country"     json:"country"     validate:"omitempty,max=100"`
	StarRating  int    `db:"star_rating" json:"star_rating" validate:"omitempty,gte=1,lte=5"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Email       string `db:"email"       json:"email"       validate:"omitempty,email,max=100"`
	Website     string `db:"website"     json:"website"     validate:"omitempty,max=200"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type SearchHotelsRequest struct {
	Name      string `json:"name"       validate:"omitempty,max=200"`
	City      string `json:"city"       validate:"omitempty,max=100"`
	Country   string `json:"country"    validate:"omitempty,max=100"`
	MinRating int    `json:"min_rating" validate:"omitempty,gte=1,lte=5"`
}

type HotelResponse struct {
	ID          string                         `json:"id"`
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	Address     string                         `json:"address"`
	City        string                         `json:"city"`
	Country     string                         `json:"country"`
	StarRating  int                            `json:"star_rating"`
	Phone       string                         `json:"phone"`
	Email       string                         `json:"email"`
	Website     string                         `json:"website"`
	Image       string                         `json:"image"`
	Active      bool                           `json:"active"`
	RoomTypes   []roomTypeDto.RoomTypeResponse `json:"room_types"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Address = model.Address
	r.City = model.City
	r.Country = model.Country
	r.StarRating = model.StarRating
	r.Phone = model.Phone
	r.Email = model.Email
	r.Website = model.Website
	r.Image = model.Image
	r.Active = model.Active
	r.RoomTypes = []roomTypeDto.RoomTypeResponse{}
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
