package controllers

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"go-ordering-storefront/database"
	"go-ordering-storefront/models"
	"go-ordering-storefront/orders"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var orderBuilder = orders.NewBuilder(&mongoCatalog{}, deliveryFeeFromEnv())

func deliveryFeeFromEnv() float64 {
	if raw := os.Getenv("DELIVERY_FEE"); raw != "" {
		if fee, err := strconv.ParseFloat(raw, 64); err == nil {
			return fee
		}
	}
	return 5.0
}

// mongoCatalog resolves a meal's default ingredients from the catalog
// collections.
type mongoCatalog struct{}

func (mongoCatalog *mongoCatalog) DefaultIngredients(ctx context.Context, productID string) ([]orders.Ingredient, error) {
	var meal models.Meal
	if err := mealCollection.FindOne(ctx, bson.M{"meal_id": productID}).Decode(&meal); err != nil {
		return nil, err
	}
	defaults := make([]orders.Ingredient, 0, len(meal.Default_ingredient_ids))
	for _, id := range meal.Default_ingredient_ids {
		var ingredient models.Ingredient
		if err := ingredientCollection.FindOne(ctx, bson.M{"ingredient_id": id}).Decode(&ingredient); err != nil {
			continue
		}
		defaults = append(defaults, orders.Ingredient{
			ID:    ingredient.Ingredient_id,
			Name:  ingredient.Name.In("en"),
			Price: ingredient.Price,
		})
	}
	return defaults, nil
}

type checkoutRequest struct {
	SessionID       string   `json:"session_id" validate:"required"`
	CustomerName    string   `json:"customer_name" validate:"required"`
	CustomerEmail   *string  `json:"customer_email"`
	CustomerPhone   *string  `json:"customer_phone"`
	CustomerAddress *string  `json:"customer_address"`
	PaymentMethod   string   `json:"payment_method" validate:"required,eq=cash|eq=card"`
	DeliveryMethod  string   `json:"delivery_method" validate:"required,eq=pickup|eq=delivery"`
	Notes           *string  `json:"notes"`
	DeliveryFee     *float64 `json:"delivery_fee"`
}

// CreateOrder runs the checkout: validate, build the payload from the
// session cart, persist, then clear the cart. A failed insert keeps the cart
// intact so the customer can retry.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req checkoutRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "message": validationErr.Error()})
			return
		}

		cartMu.Lock()
		sessionCart, ok := cartSessions[req.SessionID]
		if !ok {
			cartMu.Unlock()
			c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": "cart session was not found"})
			return
		}
		lines := sessionCart.Lines()
		cartMu.Unlock()

		details := orders.CheckoutDetails{
			CustomerName:        req.CustomerName,
			PaymentMethod:       req.PaymentMethod,
			DeliveryMethod:      req.DeliveryMethod,
			DeliveryFeeOverride: req.DeliveryFee,
		}
		if req.CustomerEmail != nil {
			details.CustomerEmail = *req.CustomerEmail
		}
		if req.CustomerPhone != nil {
			details.CustomerPhone = *req.CustomerPhone
		}
		if req.CustomerAddress != nil {
			details.CustomerAddress = *req.CustomerAddress
		}
		if req.Notes != nil {
			details.Notes = *req.Notes
		}

		payload, err := orderBuilder.Build(ctx, lines, details)
		if err != nil {
			status := http.StatusInternalServerError
			if orders.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": "validation failed", "message": err.Error()})
			return
		}

		encodedItems, err := orders.EncodeItems(payload.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "submission failed", "message": "order items could not be encoded"})
			return
		}

		var order models.Order
		order.ID = primitive.NewObjectID()
		order.Order_id = order.ID.Hex()
		order.Order_number = payload.OrderNumber
		order.Customer_name = payload.CustomerName
		order.Customer_email = req.CustomerEmail
		order.Customer_phone = req.CustomerPhone
		order.Customer_address = req.CustomerAddress
		order.Items = encodedItems
		order.Subtotal = payload.Subtotal
		order.Delivery_fee = payload.DeliveryFee
		order.Total = payload.Total
		order.Payment_method = payload.PaymentMethod
		order.Delivery_method = payload.DeliveryMethod
		order.Notes = req.Notes
		order.Status = string(orders.StatusPending)
		order.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		order.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

		_, insertErr := orderCollection.InsertOne(ctx, order)
		if insertErr != nil {
			// Cart stays untouched on a failed create so the customer can
			// retry the submission.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "submission failed", "message": "order was not created"})
			return
		}

		// Clear only after the confirmed successful creation.
		cartMu.Lock()
		if sessionCart, ok := cartSessions[req.SessionID]; ok {
			sessionCart.Clear()
		}
		cartMu.Unlock()

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"order":   orderView(order),
			"message": "order created",
		})
	}
}

// orderFilter matches an order by its number or its id, so both lookups
// work against the same endpoint.
func orderFilter(numberOrId string) bson.M {
	return bson.M{"$or": []bson.M{
		{"order_number": numberOrId},
		{"order_id": numberOrId},
	}}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderNumber := c.Param("order_number")
		var order models.Order

		err := orderCollection.FindOne(ctx, orderFilter(orderNumber)).Decode(&order)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": "order was not found"})
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

// UpdateOrderStatus applies an operator's status transition. The request
// carries the status only; every other order field is immutable once
// created.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderNumber := c.Param("order_number")

		var req struct {
			Status string `json:"status" validate:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
			return
		}
		if !orders.IsValid(orders.Status(req.Status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "message": orders.ErrUnknownStatus.Error()})
			return
		}

		updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		var updateObj primitive.D
		updateObj = append(updateObj, bson.E{Key: "status", Value: req.Status})
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updatedAt})

		result, err := orderCollection.UpdateOne(
			ctx,
			orderFilter(orderNumber),
			bson.D{{Key: "$set", Value: updateObj}},
			options.Update().SetUpsert(false),
		)
		if err != nil || result.MatchedCount == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed", "message": "order status was not updated"})
			return
		}

		notifyClients(models.StatusNotification{
			Order_number: orderNumber,
			Status:       req.Status,
			Updated_at:   updatedAt,
		})

		var order models.Order
		if err := orderCollection.FindOne(ctx, orderFilter(orderNumber)).Decode(&order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed", "message": "order could not be reloaded"})
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

// orderView decodes the serialized items for the response. A malformed item
// payload degrades to an empty list.
func orderView(order models.Order) gin.H {
	return gin.H{
		"order_id":         order.Order_id,
		"order_number":     order.Order_number,
		"customer_name":    order.Customer_name,
		"customer_email":   order.Customer_email,
		"customer_phone":   order.Customer_phone,
		"customer_address": order.Customer_address,
		"items":            orders.ParseStoredItems(order.Items),
		"subtotal":         order.Subtotal,
		"delivery_fee":     order.Delivery_fee,
		"total":            order.Total,
		"payment_method":   order.Payment_method,
		"delivery_method":  order.Delivery_method,
		"notes":            order.Notes,
		"status":           order.Status,
		"created_at":       order.Created_at,
		"updated_at":       order.Updated_at,
	}
}

// itemCountOf is used by the tracking view header.
func itemCountOf(order models.Order) int {
	count := 0
	for _, item := range orders.ParseStoredItems(order.Items) {
		count += item.Quantity
	}
	return count
}
