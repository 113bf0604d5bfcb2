package audit

import (
	"context"

	"go.uber.org/zap"
)

type Event struct {
	ShopID   string
	Action   string
	Entity   string
	EntityID string
}

// Dispatcher writes audit records off the request path. Events are dropped
// when the queue is full or the store is down; auditing must never fail an
// API call.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			context.Background(),
			ev.ShopID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
		); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
