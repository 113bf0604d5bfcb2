package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

// Record is one audit document, kept in its own collection alongside the
// domain data.
type Record struct {
	ShopID    string    `bson:"shop_id,omitempty"`
	Action    string    `bson:"action"`
	Entity    string    `bson:"entity"`
	EntityID  string    `bson:"entity_id,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

type Logger struct {
	store store.DocumentStore
	log   *zap.Logger
}

func New(st store.DocumentStore, log *zap.Logger) *Logger {
	return &Logger{store: st, log: log}
}

func (l *Logger) Log(ctx context.Context, shopID, action, entity, entityID string) error {
	rec := Record{
		ShopID:    shopID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := l.store.InsertOne(ctx, store.CollectionAuditLog, rec)
	return err
}
