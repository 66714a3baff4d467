package handlers

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancer-robiul/study-mate-b12-a10-server/config"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/utils"
)

type RequestController struct {
	collection *mongo.Collection
}

func NewRequestController(db *config.DB) *RequestController {
	collectionName := os.Getenv("MONGODB_COLLECTION_REQUESTS")
	if collectionName == "" {
		collectionName = "requests"
	}
	return &RequestController{
		collection: db.Collection(collectionName),
	}
}

func (rc *RequestController) ListRequests(c echo.Context) error {
	requesterEmail := c.QueryParam("requesterEmail")
	if requesterEmail == "" {
		return badRequest(c, "requesterEmail is required")
	}

	cursor, err := rc.collection.Find(
		context.Background(),
		bson.M{"requesterEmail": requesterEmail},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return serverError(c, err)
	}
	defer cursor.Close(context.Background())

	requests := []bson.M{}
	for cursor.Next(context.Background()) {
		var request bson.M
		if err := cursor.Decode(&request); err != nil {
			continue
		}
		requests = append(requests, request)
	}
	return c.JSON(http.StatusOK, requests)
}

func (rc *RequestController) UpdateRequest(c echo.Context) error {
	update := bson.M{}
	if err := c.Bind(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}
	delete(update, "_id")

	if len(update) == 0 {
		var request bson.M
		err := rc.collection.FindOne(context.Background(), utils.IDQuery(c.Param("id"))).Decode(&request)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return notFound(c, "Request not found")
			}
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, request)
	}

	var request bson.M
	err := rc.collection.FindOneAndUpdate(
		context.Background(),
		utils.IDQuery(c.Param("id")),
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Request not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, request)
}

func (rc *RequestController) DeleteRequest(c echo.Context) error {
	err := rc.collection.FindOneAndDelete(context.Background(), utils.IDQuery(c.Param("id"))).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return notFound(c, "Request not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}
