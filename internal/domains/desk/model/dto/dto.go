package dto

import (
	"deskbooker/internal/domains/desk/model"
	"deskbooker/shared"
	gDto "deskbooker/shared/dto"
)

type DeskResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *DeskResponse) FromModel(model model.Desk) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetDesksResponse struct {
	Desks     []DeskResponse `json:"desks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetDesksResponse) FromModels(models []model.Desk, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Desks = make([]DeskResponse, len(models))
	for i, mod := range models {
		r.Desks[i].FromModel(mod)
	}
}

// AvailableDesksResponse lists the desks still free on Date.
type AvailableDesksResponse struct {
	Date  string         `json:"date"`
	Desks []DeskResponse `json:"desks"`
}

func (r *AvailableDesksResponse) FromModels(date string, models []model.Desk) {
	r.Date = date

	r.Desks = make([]DeskResponse, len(models))
	for i, mod := range models {
		r.Desks[i].FromModel(mod)
	}
}
