package model

import (
	"backoffice/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID         = "id"
	FieldName       = "name"
	FieldCity       = "city"
	FieldCountry    = "country"
	FieldStarRating = "star_rating"
	FieldActive     = "active"
)

type Hotel struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Address     string `db:"address"`
	City        string `db:"city"`
	Country     string `db:"country"`
	StarRating  int    `db:"star_rating"`
	Phone       string `db:"phone"`
	Email       string `db:"email"`
	Website     string `db:"website"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
