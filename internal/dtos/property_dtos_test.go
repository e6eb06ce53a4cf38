package dtos

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyhub/listings-api/internal/models"
)

func TestPropertyListItemWithoutPhotosHasNullPhoto(t *testing.T) {
	p := &models.Property{
		SellRent:         models.ForSell,
		Name:             "Casa con patio",
		CityName:         "Rosario",
		PropertyTypeName: "Casa",
	}
	p.ID = 7

	item := NewPropertyListItemFromModel(p)
	require.Equal(t, 7, item.ID)
	require.Nil(t, item.Photo)
}

func TestPropertyListItemUsesPrimaryPhotoURL(t *testing.T) {
	p := &models.Property{
		Photos: []*models.Photo{
			{PublicID: "a", ImageURL: "https://media.test/a"},
			{PublicID: "b", ImageURL: "https://media.test/b", IsPrimary: true},
		},
	}

	item := NewPropertyListItemFromModel(p)
	require.NotNil(t, item.Photo)
	require.Equal(t, "https://media.test/b", *item.Photo)
}
