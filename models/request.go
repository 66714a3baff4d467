package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// NewRequest builds a request document for the given partner. partnerEmail
// is stored as null when the partner has no email field. The snapshot is
// taken before the partner's counter increment, so it records patnerCount
// as it stood at request time.
func NewRequest(partner bson.M, requesterEmail string, now time.Time) bson.M {
	var partnerEmail interface{}
	if v, ok := partner["email"]; ok {
		partnerEmail = v
	}
	return bson.M{
		"partnerId":       partner["_id"],
		"partnerEmail":    partnerEmail,
		"requesterEmail":  requesterEmail,
		"partnerSnapshot": PartnerSnapshot(partner),
		"createdAt":       now,
	}
}
