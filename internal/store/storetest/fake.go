// Package storetest provides an in-memory DocumentStore for handler and
// audit tests, honoring the same filter semantics as the real adapter.
package storetest

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

type Fake struct {
	mu   sync.Mutex
	docs map[string][]store.Document

	// InsertErr and FindErr, when set, are returned by every call.
	InsertErr error
	FindErr   error
}

var _ store.DocumentStore = (*Fake)(nil)

func New() *Fake {
	return &Fake{docs: map[string][]store.Document{}}
}

func (f *Fake) InsertOne(_ context.Context, collection string, record any) (string, error) {
	if f.InsertErr != nil {
		return "", f.InsertErr
	}

	// Round-trip through bson so the fake stores exactly what the real
	// adapter would, bson tags and all.
	raw, err := bson.Marshal(record)
	if err != nil {
		return "", &store.WriteError{Collection: collection, Err: err}
	}
	var doc store.Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", &store.WriteError{Collection: collection, Err: err}
	}

	id := primitive.NewObjectID()
	doc[store.IDField] = id

	f.mu.Lock()
	f.docs[collection] = append(f.docs[collection], doc)
	f.mu.Unlock()

	return id.Hex(), nil
}

func (f *Fake) FindMany(_ context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]store.Document, 0)
	for _, doc := range f.docs[collection] {
		if !matches(doc, filter) {
			continue
		}
		// Copies, like the real adapter: callers reshape results freely.
		cp := make(store.Document, len(doc))
		for k, v := range doc {
			cp[k] = v
		}
		out = append(out, cp)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

// Count reports how many documents a collection holds, filters aside.
func (f *Fake) Count(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs[collection])
}

func matches(doc store.Document, filter store.Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok {
			return false
		}
		if cond, isCond := want.(store.Cond); isCond {
			if cond.Op != store.OpGte || !gte(got, cond.Value) {
				return false
			}
			continue
		}
		if !equal(got, want) {
			return false
		}
	}
	return true
}

func equal(got, want any) bool {
	if gt, ok := asTime(got); ok {
		wt, ok := asTime(want)
		return ok && gt.Equal(wt)
	}
	if gn, ok := asFloat(got); ok {
		wn, ok := asFloat(want)
		return ok && gn == wn
	}
	return got == want
}

func gte(got, want any) bool {
	if gt, ok := asTime(got); ok {
		wt, ok := asTime(want)
		return ok && !gt.Before(wt)
	}
	if gn, ok := asFloat(got); ok {
		wn, ok := asFloat(want)
		return ok && gn >= wn
	}
	gs, gok := got.(string)
	ws, wok := want.(string)
	return gok && wok && gs >= ws
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
