package handlers

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancer-robiul/study-mate-b12-a10-server/config"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/models"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/utils"
)

type PartnerController struct {
	collection *mongo.Collection
	requests   *mongo.Collection
	cache      *utils.Cache
}

func NewPartnerController(db *config.DB, cache *utils.Cache) *PartnerController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PARTNERS")
	if collectionName == "" {
		collectionName = "partners"
	}
	requestsName := os.Getenv("MONGODB_COLLECTION_REQUESTS")
	if requestsName == "" {
		requestsName = "requests"
	}
	return &PartnerController{
		collection: db.Collection(collectionName),
		requests:   db.Collection(requestsName),
		cache:      cache,
	}
}

// partnerFilter builds the listing predicate. subject and location are
// case-insensitive substring matches; studyMode and email are exact.
// Absent filters impose no constraint.
func partnerFilter(subject, studyMode, location, email string) bson.M {
	query := bson.M{}
	if subject != "" {
		query["subject"] = bson.M{"$regex": subject, "$options": "i"}
	}
	if location != "" {
		query["location"] = bson.M{"$regex": location, "$options": "i"}
	}
	if studyMode != "" {
		query["studyMode"] = studyMode
	}
	if email != "" {
		query["email"] = email
	}
	return query
}

// rankSort is the default ordering: best-rated first, most-requested
// among equals, newest after that.
func rankSort() bson.D {
	return bson.D{
		{Key: "rating", Value: -1},
		{Key: "patnerCount", Value: -1},
		{Key: "createdAt", Value: -1},
	}
}

func partnerSort(sortParam string) bson.D {
	if sortParam == "new" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return rankSort()
}

func (pc *PartnerController) ListPartners(c echo.Context) error {
	subject := c.QueryParam("subject")
	studyMode := c.QueryParam("studyMode")
	location := c.QueryParam("location")
	email := c.QueryParam("email")
	sortParam := c.QueryParam("sort")

	cacheKey := utils.QueryCacheKey("partners", map[string]string{
		"subject":   subject,
		"studyMode": studyMode,
		"location":  location,
		"email":     email,
		"sort":      sortParam,
	})
	cached := []bson.M{}
	if ok, err := pc.cache.Get(context.Background(), cacheKey, &cached); err == nil && ok {
		return c.JSON(http.StatusOK, cached)
	}

	cursor, err := pc.collection.Find(
		context.Background(),
		partnerFilter(subject, studyMode, location, email),
		options.Find().SetSort(partnerSort(sortParam)),
	)
	if err != nil {
		return serverError(c, err)
	}
	defer cursor.Close(context.Background())

	partners := []bson.M{}
	for cursor.Next(context.Background()) {
		var partner bson.M
		if err := cursor.Decode(&partner); err != nil {
			continue
		}
		partners = append(partners, partner)
	}

	_ = pc.cache.Set(context.Background(), cacheKey, partners, utils.ListingCacheTTL)
	return c.JSON(http.StatusOK, partners)
}

func (pc *PartnerController) TopPartners(c echo.Context) error {
	limit := 3
	if l := c.QueryParam("limit"); l != "" {
		if num, err := strconv.Atoi(l); err == nil && num > 3 {
			limit = num
		}
	}

	cacheKey := utils.QueryCacheKey("partners:top", map[string]string{
		"limit": strconv.Itoa(limit),
	})
	cached := []bson.M{}
	if ok, err := pc.cache.Get(context.Background(), cacheKey, &cached); err == nil && ok {
		return c.JSON(http.StatusOK, cached)
	}

	cursor, err := pc.collection.Find(
		context.Background(),
		bson.M{},
		options.Find().SetSort(rankSort()).SetLimit(int64(limit)),
	)
	if err != nil {
		return serverError(c, err)
	}
	defer cursor.Close(context.Background())

	partners := []bson.M{}
	for cursor.Next(context.Background()) {
		var partner bson.M
		if err := cursor.Decode(&partner); err != nil {
			continue
		}
		partners = append(partners, partner)
	}

	_ = pc.cache.Set(context.Background(), cacheKey, partners, utils.ListingCacheTTL)
	return c.JSON(http.StatusOK, partners)
}

func (pc *PartnerController) GetPartner(c echo.Context) error {
	var partner bson.M
	err := pc.collection.FindOne(context.Background(), utils.IDQuery(c.Param("id"))).Decode(&partner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Partner not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, partner)
}

func (pc *PartnerController) CreatePartner(c echo.Context) error {
	partner := bson.M{}
	if err := c.Bind(&partner); err != nil {
		return badRequest(c, "Invalid request body")
	}

	partner["createdAt"] = time.Now()
	res, err := pc.collection.InsertOne(context.Background(), partner)
	if err != nil {
		return serverError(c, err)
	}
	partner["_id"] = res.InsertedID
	return c.JSON(http.StatusCreated, partner)
}

func (pc *PartnerController) UpdatePartner(c echo.Context) error {
	update := bson.M{}
	if err := c.Bind(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}
	// the stored identifier is never client-writable
	delete(update, "_id")

	if len(update) == 0 {
		return pc.GetPartner(c)
	}

	var partner bson.M
	err := pc.collection.FindOneAndUpdate(
		context.Background(),
		utils.IDQuery(c.Param("id")),
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&partner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Partner not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, partner)
}

func (pc *PartnerController) IncrementPartner(c echo.Context) error {
	body := bson.M{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	inc := bson.M{}
	for _, field := range []string{"rating", "patnerCount"} {
		if v, ok := body[field]; ok {
			if n, numeric := utils.Number(v); numeric {
				inc[field] = n
			}
		}
	}

	// non-numeric and absent deltas are ignored, not zeroed
	if len(inc) == 0 {
		return pc.GetPartner(c)
	}

	var partner bson.M
	err := pc.collection.FindOneAndUpdate(
		context.Background(),
		utils.IDQuery(c.Param("id")),
		bson.M{"$inc": inc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&partner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Partner not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, partner)
}

func (pc *PartnerController) DeletePartner(c echo.Context) error {
	err := pc.collection.FindOneAndDelete(context.Background(), utils.IDQuery(c.Param("id"))).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Partner not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}

// RequestPartner inserts a request carrying a snapshot of the partner as
// it stood before the increment, then bumps the partner's patnerCount.
// The two writes are not transactional: a failed increment after a
// successful insert leaves the snapshot counter stale by one.
func (pc *PartnerController) RequestPartner(c echo.Context) error {
	body := bson.M{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	requesterEmail, _ := body["requesterEmail"].(string)
	if requesterEmail == "" {
		return badRequest(c, "requesterEmail is required")
	}

	var partner bson.M
	err := pc.collection.FindOne(context.Background(), utils.IDQuery(c.Param("id"))).Decode(&partner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Partner not found")
		}
		return serverError(c, err)
	}

	request := models.NewRequest(partner, requesterEmail, time.Now())
	if _, err := pc.requests.InsertOne(context.Background(), request); err != nil {
		return serverError(c, err)
	}

	var updated bson.M
	err = pc.collection.FindOneAndUpdate(
		context.Background(),
		utils.IDQuery(c.Param("id")),
		bson.M{"$inc": bson.M{"patnerCount": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true, "partner": updated})
}
