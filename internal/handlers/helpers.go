package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

// publicDocuments renames the store's internal identifier to "id" on each
// document. Documents somehow missing the field still get an empty id, so
// the response shape is uniform.
func publicDocuments(docs []store.Document) []store.Document {
	for _, doc := range docs {
		id := ""
		if raw, ok := doc[store.IDField]; ok {
			id = publicID(raw)
			delete(doc, store.IDField)
		}
		doc["id"] = id
	}
	return docs
}

func publicID(raw any) string {
	if oid, ok := raw.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(raw)
}

func limitQuery(c *gin.Context, def int64) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_limit", "limit must be an integer.")
		return 0, false
	}
	return limit, true
}

func collectionFor(c *gin.Context, record any) (string, bool) {
	name, err := store.CollectionFor(record)
	if err != nil {
		httperr.Internal(c, "unmapped_record_type", err.Error())
		return "", false
	}
	return name, true
}

// storeError maps adapter failures onto the API error envelope. Diagnostic
// detail is truncated before it reaches the client.
func storeError(c *gin.Context, code string, err error) {
	if errors.Is(err, store.ErrStoreUnavailable) {
		httperr.Internal(c, "store_unavailable", "Database not available.")
		return
	}
	httperr.Internal(c, code, httperr.Truncate(err.Error(), 80))
}
