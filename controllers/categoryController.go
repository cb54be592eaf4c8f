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

var categoryCollection *mongo.Collection = database.OpenCollection(database.Client, "category")

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		findOpts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
		result, err := categoryCollection.Find(ctx, bson.M{}, findOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing categories"})
			return
		}
		var allCategories []models.Category
		if err := result.All(ctx, &allCategories); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while decoding categories"})
			return
		}

		locale := c.DefaultQuery("locale", "en")
		out := make([]gin.H, 0, len(allCategories))
		for _, cat := range allCategories {
			out = append(out, gin.H{
				"category_id": cat.Category_id,
				"slug":        cat.Slug,
				"name":        cat.Name.In(locale),
				"sort_order":  cat.Sort_order,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		slug := c.Param("slug")
		var category models.Category

		err := categoryCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category was not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var category models.Category

		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&category); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		category.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		category.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		category.ID = primitive.NewObjectID()
		category.Category_id = category.ID.Hex()

		result, insertErr := categoryCollection.InsertOne(ctx, category)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "category was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var category models.Category
		categoryId := c.Param("category_id")

		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if category.Slug != "" {
			updateObj = append(updateObj, bson.E{Key: "slug", Value: category.Slug})
		}
		if category.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: category.Name})
		}
		updateObj = append(updateObj, bson.E{Key: "sort_order", Value: category.Sort_order})
		category.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: category.Updated_at})

		upsert := true
		opt := options.UpdateOptions{Upsert: &upsert}
		result, err := categoryCollection.UpdateOne(
			ctx,
			bson.M{"category_id": categoryId},
			bson.D{{Key: "$set", Value: updateObj}},
			&opt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "category update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
