package controllers

import (
	"context"
	"net/http"
	"time"

	"go-ordering-storefront/database"
	"go-ordering-storefront/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var drinkCollection *mongo.Collection = database.OpenCollection(database.Client, "drink")

func GetDrinks() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := drinkCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing drinks"})
			return
		}
		var allDrinks []models.Drink
		if err := result.All(ctx, &allDrinks); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while decoding drinks"})
			return
		}

		locale := c.DefaultQuery("locale", "en")
		out := make([]gin.H, 0, len(allDrinks))
		for _, d := range allDrinks {
			out = append(out, gin.H{
				"drink_id": d.Drink_id,
				"name":     d.Name.In(locale),
				"price":    d.Price,
				"image":    d.Image,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetDrink() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		drinkId := c.Param("drink_id")
		var drink models.Drink

		err := drinkCollection.FindOne(ctx, bson.M{"drink_id": drinkId}).Decode(&drink)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "drink was not found"})
			return
		}
		c.JSON(http.StatusOK, drink)
	}
}

func CreateDrink() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var drink models.Drink

		if err := c.BindJSON(&drink); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&drink); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		drink.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		drink.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		drink.ID = primitive.NewObjectID()
		drink.Drink_id = drink.ID.Hex()

		result, insertErr := drinkCollection.InsertOne(ctx, drink)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "drink was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateDrink() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var drink models.Drink
		drinkId := c.Param("drink_id")

		if err := c.BindJSON(&drink); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if drink.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: drink.Name})
		}
		if drink.Price != nil {
			updateObj = append(updateObj, bson.E{Key: "price", Value: drink.Price})
		}
		if drink.Image != nil {
			updateObj = append(updateObj, bson.E{Key: "image", Value: drink.Image})
		}
		drink.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: drink.Updated_at})

		upsert := true
		opt := options.UpdateOptions{Upsert: &upsert}
		result, err := drinkCollection.UpdateOne(
			ctx,
			bson.M{"drink_id": drinkId},
			bson.D{{Key: "$set", Value: updateObj}},
			&opt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "drink update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
