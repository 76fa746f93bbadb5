package models

import (
	dbgen "github.com/golazo-app/golazo/internal/db/generated"
)

type Field struct {
	ID       string  `json:"id"`
	AdminID  string  `json:"adminId"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	PhotoURL string  `json:"photoUrl,omitempty"`
}

func FieldFromRow(row dbgen.Field) Field {
	return Field{
		ID:       row.ID,
		AdminID:  row.AdminID,
		Name:     row.Name,
		Location: row.Location,
		Price:    row.Price,
		PhotoURL: row.PhotoUrl.String,
	}
}
