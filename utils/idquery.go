package utils

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDQuery builds a predicate matching a record by any of the three
// identifier conventions the collections accumulated over time: a native
// ObjectID, a legacy string "id" field, or a raw string stored directly
// as _id. Strings that are not valid ObjectID hex simply skip the first
// clause.
func IDQuery(id string) bson.M {
	or := []bson.M{}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		or = append(or, bson.M{"_id": oid})
	}
	or = append(or, bson.M{"id": id}, bson.M{"_id": id})
	return bson.M{"$or": or}
}
