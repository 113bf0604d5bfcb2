package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-saas/internal/models"
)

func TestCollectionForAllRecordTypes(t *testing.T) {
	tests := []struct {
		record any
		want   string
	}{
		{models.Shop{}, "shop"},
		{&models.Shop{}, "shop"},
		{models.Staff{}, "staff"},
		{models.Service{}, "service"},
		{models.Client{}, "client"},
		{&models.Client{}, "client"},
		{models.Appointment{}, "appointment"},
		{models.CRMWorkflow{}, "crmworkflow"},
	}

	for _, tt := range tests {
		name, err := CollectionFor(tt.record)
		require.NoError(t, err)
		assert.Equal(t, tt.want, name)
	}
}

func TestCollectionForUnknownType(t *testing.T) {
	_, err := CollectionFor(struct{ X int }{})
	assert.Error(t, err)

	_, err = CollectionFor("shop")
	assert.Error(t, err)
}
