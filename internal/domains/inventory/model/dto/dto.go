package dto

import (
	"time"

	"backoffice/internal/domains/inventory/model"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"

	"github.com/google/uuid"
)

type UpdateInventoryRequest struct {
	RoomTypeID     string  `json:"room_type_id"    validate:"required,uuid"`
	Date           string  `json:"date"            validate:"required"`
	AvailableRooms int     `json:"available_rooms" validate:"gte=0,lte=1000"`
	Price          float64 `json:"price"           validate:"gte=0,lte=10000"`
}

func (u *UpdateInventoryRequest) ParseDate() (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, u.Date)
}

type GenerateInventoryRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	StartDate  string `json:"start_date"   validate:"required"`
	EndDate    string `json:"end_date"     validate:"required"`
}

func (g *GenerateInventoryRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, g.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(constant.DateOnlyFormat, g.EndDate)

	return start, end, err
}

// NewLedgerRow seeds one ledger day for a room type: nothing booked yet,
// capacity and price taken from the room type definition.
func NewLedgerRow(roomTypeID string, date time.Time, totalRooms int, basePrice float64, user string, now time.Time) model.Inventory {
	return model.Inventory{
		ID:             uuid.NewString(),
		RoomTypeID:     roomTypeID,
		Date:           date,
		AvailableRooms: totalRooms,
		BookedRooms:    0,
		PricePerNight:  basePrice,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type InventoryResponse struct {
	ID             string  `json:"id"`
	RoomTypeID     string  `json:"room_type_id"`
	Date           string  `json:"date"`
	AvailableRooms int     `json:"available_rooms"`
	BookedRooms    int     `json:"booked_rooms"`
	PricePerNight  float64 `json:"price_per_night"`
	gDto.Metadata
}

func (r *InventoryResponse) FromModel(model model.Inventory) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.AvailableRooms = model.AvailableRooms
	r.BookedRooms = model.BookedRooms
	r.PricePerNight = model.PricePerNight
	r.Metadata.FromModel(model.Metadata)
}

type GetInventoriesResponse struct {
	Inventories []InventoryResponse `json:"inventories"`
	TotalData   int                 `json:"total_data"`
}

func (r *GetInventoriesResponse) FromModels(models []model.Inventory) {
	r.TotalData = len(models)

	r.Inventories = make([]InventoryResponse, len(models))
	for i, mod := range models {
		r.Inventories[i].FromModel(mod)
	}
}
