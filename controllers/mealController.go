package controllers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"go-ordering-storefront/database"
	"go-ordering-storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mealCollection *mongo.Collection = database.OpenCollection(database.Client, "meal")

var validate = validator.New()

func GetMeals() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if slug := c.Query("category"); slug != "" {
			filter["category_slug"] = slug
		}

		result, err := mealCollection.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing meals"})
			return
		}
		var allMeals []models.Meal
		if err := result.All(ctx, &allMeals); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while decoding meals"})
			return
		}
		c.JSON(http.StatusOK, localizedMeals(allMeals, c.DefaultQuery("locale", "en")))
	}
}

func GetMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		mealId := c.Param("meal_id")
		var meal models.Meal

		err := mealCollection.FindOne(ctx, bson.M{"meal_id": mealId}).Decode(&meal)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal was not found"})
			return
		}
		c.JSON(http.StatusOK, meal)
	}
}

func CreateMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var meal models.Meal

		if err := c.BindJSON(&meal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&meal); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		meal.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		meal.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		meal.ID = primitive.NewObjectID()
		meal.Meal_id = meal.ID.Hex()
		if meal.Price != nil {
			rounded := toFixed(*meal.Price, 2)
			meal.Price = &rounded
		}

		result, insertErr := mealCollection.InsertOne(ctx, meal)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "meal was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var meal models.Meal
		mealId := c.Param("meal_id")

		if err := c.BindJSON(&meal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if meal.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: meal.Name})
		}
		if meal.Price != nil {
			rounded := toFixed(*meal.Price, 2)
			updateObj = append(updateObj, bson.E{Key: "price", Value: rounded})
		}
		if meal.Category_slug != "" {
			updateObj = append(updateObj, bson.E{Key: "category_slug", Value: meal.Category_slug})
		}
		if meal.Image != nil {
			updateObj = append(updateObj, bson.E{Key: "image", Value: meal.Image})
		}
		if meal.Default_ingredient_ids != nil {
			updateObj = append(updateObj, bson.E{Key: "default_ingredient_ids", Value: meal.Default_ingredient_ids})
		}
		if meal.Add_on_ids != nil {
			updateObj = append(updateObj, bson.E{Key: "add_on_ids", Value: meal.Add_on_ids})
		}
		meal.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: meal.Updated_at})

		upsert := true
		opt := options.UpdateOptions{Upsert: &upsert}
		result, err := mealCollection.UpdateOne(
			ctx,
			bson.M{"meal_id": mealId},
			bson.D{{Key: "$set", Value: updateObj}},
			&opt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "meal update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// localizedMeals flattens the name map to the requested locale for listing
// responses.
func localizedMeals(meals []models.Meal, locale string) []gin.H {
	out := make([]gin.H, 0, len(meals))
	for _, m := range meals {
		out = append(out, gin.H{
			"meal_id":                m.Meal_id,
			"name":                   m.Name.In(locale),
			"price":                  m.Price,
			"category_slug":          m.Category_slug,
			"image":                  m.Image,
			"default_ingredient_ids": m.Default_ingredient_ids,
			"add_on_ids":             m.Add_on_ids,
		})
	}
	return out
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func toFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}
