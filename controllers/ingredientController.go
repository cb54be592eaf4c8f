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

var ingredientCollection *mongo.Collection = database.OpenCollection(database.Client, "ingredient")

func GetIngredients() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if c.Query("add_ons") == "true" {
			filter["is_add_on"] = true
		}
		result, err := ingredientCollection.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing ingredients"})
			return
		}
		var allIngredients []models.Ingredient
		if err := result.All(ctx, &allIngredients); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while decoding ingredients"})
			return
		}

		locale := c.DefaultQuery("locale", "en")
		out := make([]gin.H, 0, len(allIngredients))
		for _, ing := range allIngredients {
			out = append(out, gin.H{
				"ingredient_id": ing.Ingredient_id,
				"name":          ing.Name.In(locale),
				"price":         ing.Price,
				"is_add_on":     ing.Is_add_on,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		ingredientId := c.Param("ingredient_id")
		var ingredient models.Ingredient

		err := ingredientCollection.FindOne(ctx, bson.M{"ingredient_id": ingredientId}).Decode(&ingredient)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient was not found"})
			return
		}
		c.JSON(http.StatusOK, ingredient)
	}
}

func CreateIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var ingredient models.Ingredient

		if err := c.BindJSON(&ingredient); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&ingredient); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		ingredient.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		ingredient.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		ingredient.ID = primitive.NewObjectID()
		ingredient.Ingredient_id = ingredient.ID.Hex()

		result, insertErr := ingredientCollection.InsertOne(ctx, ingredient)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ingredient was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var ingredient models.Ingredient
		ingredientId := c.Param("ingredient_id")

		if err := c.BindJSON(&ingredient); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if ingredient.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: ingredient.Name})
		}
		updateObj = append(updateObj, bson.E{Key: "price", Value: ingredient.Price})
		updateObj = append(updateObj, bson.E{Key: "is_add_on", Value: ingredient.Is_add_on})
		ingredient.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: ingredient.Updated_at})

		upsert := true
		opt := options.UpdateOptions{Upsert: &upsert}
		result, err := ingredientCollection.UpdateOne(
			ctx,
			bson.M{"ingredient_id": ingredientId},
			bson.D{{Key: "$set", Value: updateObj}},
			&opt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ingredient update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
