package store

import "go.mongodb.org/mongo-driver/bson"

// Filter selects documents by field. A value is matched exactly unless it is
// a Cond, in which case the comparator applies. The zero value matches every
// document in the collection.
type Filter map[string]any

// Cond is a single comparator over one field. Op uses the store's operator
// names so the in-memory fake and the real adapter agree on semantics.
type Cond struct {
	Op    string
	Value any
}

const OpGte = "$gte"

// Gte matches documents whose field is greater than or equal to v. This is
// the only comparator the API needs (end_time range filtering).
func Gte(v any) Cond {
	return Cond{Op: OpGte, Value: v}
}

func (f Filter) toBSON() bson.M {
	out := bson.M{}
	for field, v := range f {
		if cond, ok := v.(Cond); ok {
			out[field] = bson.M{cond.Op: cond.Value}
			continue
		}
		out[field] = v
	}
	return out
}
