package handlers

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/freelancer-robiul/study-mate-b12-a10-server/config"
)

// ListRequests must reject a missing requesterEmail before touching the
// store, so a controller with no collection at all is enough here.
func TestListRequestsRequiresEmail(t *testing.T) {
	rc := &RequestController{}

	c, rec := jsonRequest(http.MethodGet, "/api/requests", "")
	if err := rc.ListRequests(c); err != nil {
		t.Fatalf("ListRequests failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func newRequestController(t *testing.T) *RequestController {
	t.Helper()
	if os.Getenv("MONGODB_URI") == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}
	t.Setenv("MONGODB_DATABASE", "studyPartnerTestDB")

	ctx := context.Background()
	db, err := config.ConnectDB(ctx)
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}

	requests := db.Collection("requests_test")
	_ = requests.Drop(ctx)

	t.Cleanup(func() {
		_ = requests.Drop(context.Background())
		_ = db.Close(context.Background())
	})

	return &RequestController{collection: requests}
}

func seedRequest(t *testing.T, rc *RequestController, requesterEmail string, createdAt time.Time) string {
	t.Helper()
	res, err := rc.collection.InsertOne(context.Background(), bson.M{
		"partnerId":      primitive.NewObjectID(),
		"partnerEmail":   "mentor@x.com",
		"requesterEmail": requesterEmail,
		"partnerSnapshot": bson.M{
			"name":        "Mentor",
			"rating":      float64(4),
			"patnerCount": float64(1),
		},
		"createdAt": createdAt,
	})
	if err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex()
}

func TestListRequestsFilteredAndSorted(t *testing.T) {
	rc := newRequestController(t)
	now := time.Now()

	seedRequest(t, rc, "a@x.com", now.Add(-2*time.Hour))
	seedRequest(t, rc, "a@x.com", now)
	seedRequest(t, rc, "b@x.com", now.Add(-time.Hour))

	c, rec := jsonRequest(http.MethodGet, "/api/requests?requesterEmail=a@x.com", "")
	if err := rc.ListRequests(c); err != nil {
		t.Fatalf("ListRequests failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var requests []map[string]interface{}
	decodeBody(t, rec, &requests)
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests for a@x.com, got %d", len(requests))
	}
	first := parseCreatedAt(t, requests[0])
	second := parseCreatedAt(t, requests[1])
	if !first.After(second) {
		t.Fatalf("requests not sorted newest-first: %v then %v", first, second)
	}
}

func parseCreatedAt(t *testing.T, doc map[string]interface{}) time.Time {
	t.Helper()
	raw, ok := doc["createdAt"].(string)
	if !ok {
		t.Fatalf("createdAt missing or not a timestamp: %v", doc["createdAt"])
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		t.Fatalf("createdAt %q not parseable: %v", raw, err)
	}
	return parsed
}

func TestUpdateRequest(t *testing.T) {
	rc := newRequestController(t)

	id := seedRequest(t, rc, "a@x.com", time.Now())

	c, rec := jsonRequest(http.MethodPatch, "/", `{"_id":"ignored","status":"accepted"}`)
	setID(c, "/api/requests/:id", id)
	if err := rc.UpdateRequest(c); err != nil {
		t.Fatalf("UpdateRequest failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	updated := map[string]interface{}{}
	decodeBody(t, rec, &updated)
	if updated["_id"] != id {
		t.Fatalf("identifier changed: got %v, want %s", updated["_id"], id)
	}
	if updated["status"] != "accepted" {
		t.Fatalf("merge did not apply: %v", updated)
	}
	if updated["requesterEmail"] != "a@x.com" {
		t.Fatal("merge clobbered an untouched field")
	}
}

func TestUpdateRequestNotFound(t *testing.T) {
	rc := newRequestController(t)

	c, rec := jsonRequest(http.MethodPatch, "/", `{"status":"accepted"}`)
	setID(c, "/api/requests/:id", primitive.NewObjectID().Hex())
	if err := rc.UpdateRequest(c); err != nil {
		t.Fatalf("UpdateRequest failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteRequest(t *testing.T) {
	rc := newRequestController(t)

	id := seedRequest(t, rc, "a@x.com", time.Now())

	c, rec := jsonRequest(http.MethodDelete, "/", "")
	setID(c, "/api/requests/:id", id)
	if err := rc.DeleteRequest(c); err != nil {
		t.Fatalf("DeleteRequest failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	ack := map[string]interface{}{}
	decodeBody(t, rec, &ack)
	if ack["ok"] != true {
		t.Fatalf("expected {ok:true}, got %v", ack)
	}

	c, rec = jsonRequest(http.MethodDelete, "/", "")
	setID(c, "/api/requests/:id", id)
	if err := rc.DeleteRequest(c); err != nil {
		t.Fatalf("DeleteRequest failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", rec.Code)
	}
}
