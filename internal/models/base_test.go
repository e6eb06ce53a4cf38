package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStampRecordsActor(t *testing.T) {
	var a Audited
	before := time.Now().UTC()
	a.Stamp("maria")

	require.Equal(t, "maria", a.LastUpdatedBy)
	require.False(t, a.LastUpdatedOn.Before(before))
}

func TestStampEmptyActorFallsBackToSystem(t *testing.T) {
	var a Audited
	a.Stamp("")
	require.Equal(t, SystemActor, a.LastUpdatedBy)
}

func TestPrimaryPhotoLookup(t *testing.T) {
	p := Property{Photos: []*Photo{
		{PublicID: "a"},
		{PublicID: "b", IsPrimary: true},
	}}
	require.Equal(t, "b", p.PrimaryPhoto().PublicID)
	require.Equal(t, "a", p.FindPhoto("a").PublicID)
	require.Nil(t, p.FindPhoto("missing"))

	empty := Property{}
	require.Nil(t, empty.PrimaryPhoto())
}
