package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-saas/internal/store"
	"github.com/BruksfildServices01/barbershop-saas/internal/store/storetest"
)

func TestLoggerWritesRecord(t *testing.T) {
	fake := storetest.New()
	logger := New(fake, zap.NewNop())

	err := logger.Log(context.Background(), "shop-1", "shop_created", "shop", "id-1")

	require.NoError(t, err)
	assert.Equal(t, 1, fake.Count(store.CollectionAuditLog))
}

func TestDispatcherWritesAsynchronously(t *testing.T) {
	fake := storetest.New()
	log := zap.NewNop()
	d := NewDispatcher(New(fake, log), log)

	d.Dispatch(Event{ShopID: "shop-1", Action: "client_created", Entity: "client", EntityID: "id-1"})

	assert.Eventually(t, func() bool {
		return fake.Count(store.CollectionAuditLog) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDispatcherDropsWhenStoreDown(t *testing.T) {
	fake := storetest.New()
	fake.InsertErr = store.ErrStoreUnavailable
	log := zap.NewNop()
	d := NewDispatcher(New(fake, log), log)

	// Must not panic or block the caller.
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "shop_created", Entity: "shop"})
	})
}
