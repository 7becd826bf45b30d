package dto_test

import (
	"deskbooker/internal/domains/desk/model"
	"deskbooker/internal/domains/desk/model/dto"
	gModel "deskbooker/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDesksResponse_FromModels(t *testing.T) {
	created := time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC)
	desks := []model.Desk{
		{ID: 1, Name: "A1", Location: "North wing", Active: true, Metadata: gModel.NewMetadata("system", created)},
		{ID: 2, Name: "A2", Location: "North wing", Active: false, Metadata: gModel.NewMetadata("system", created)},
	}

	res := dto.GetDesksResponse{}
	res.FromModels(desks, 12, 5)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Desks, 2)
	assert.Equal(t, 2, res.Desks[1].ID)
	assert.False(t, res.Desks[1].Active)
	assert.Equal(t, "system", res.Desks[0].CreatedBy)
}

func TestAvailableDesksResponse_FromModels(t *testing.T) {
	res := dto.AvailableDesksResponse{}
	res.FromModels("2020-01-28", nil)

	assert.Equal(t, "2020-01-28", res.Date)
	assert.NotNil(t, res.Desks)
	assert.Empty(t, res.Desks)
}
