package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-saas/internal/config"
	"github.com/BruksfildServices01/barbershop-saas/internal/models"
)

func degradedStore(t *testing.T) *Mongo {
	t.Helper()
	return Connect(context.Background(), &config.Config{}, zap.NewNop())
}

func TestConnectWithoutConfigDegrades(t *testing.T) {
	st := degradedStore(t)

	assert.False(t, st.Ready())
}

func TestDegradedStoreReportsUnavailable(t *testing.T) {
	st := degradedStore(t)
	ctx := context.Background()

	_, err := st.InsertOne(ctx, CollectionShop, models.Shop{Name: "Fade Factory"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = st.FindMany(ctx, CollectionShop, Filter{}, 50)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = st.CollectionNames(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestDegradedStoreCloseIsNoop(t *testing.T) {
	st := degradedStore(t)

	assert.NoError(t, st.Close(context.Background()))
}

func TestConnectWithBadURLDegrades(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:  "not-a-connection-string",
		DatabaseName: "barbershop",
	}

	st := Connect(context.Background(), cfg, zap.NewNop())

	assert.False(t, st.Ready())
}
