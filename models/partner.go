package models

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/freelancer-robiul/study-mate-b12-a10-server/utils"
)

// snapshotFields are the partner attributes copied verbatim into a
// request's partnerSnapshot. rating and patnerCount are handled
// separately because absent values default to 0.
var snapshotFields = []string{
	"name",
	"profileimage",
	"subject",
	"studyMode",
	"availabilityTime",
	"location",
	"experienceLevel",
}

// PartnerSnapshot copies the partner fields a request keeps for itself.
// The copy is intentionally not live-linked: later partner edits must not
// change historical requests.
func PartnerSnapshot(partner bson.M) bson.M {
	snapshot := bson.M{}
	for _, field := range snapshotFields {
		if v, ok := partner[field]; ok {
			snapshot[field] = v
		}
	}
	snapshot["rating"] = utils.NumberOrZero(partner["rating"])
	snapshot["patnerCount"] = utils.NumberOrZero(partner["patnerCount"])
	return snapshot
}
