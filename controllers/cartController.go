package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go-ordering-storefront/cart"
	"go-ordering-storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Session carts live in memory for the lifetime of the process. Access is
// serialized by cartMu, so each cart sees one actor at a time.
var (
	cartSessions = make(map[string]*cart.Cart)
	cartMu       sync.Mutex
)

var (
	errMealNotFound  = errors.New("meal was not found")
	errDrinkNotFound = errors.New("drink was not found")
	errAddOnNotFound = errors.New("add-on ingredient was not found")
)

type cartItemRequest struct {
	Kind      string   `json:"kind" validate:"required,eq=meal|eq=drink"`
	ProductID string   `json:"product_id" validate:"required"`
	AddOnIDs  []string `json:"add_on_ids"`
	Quantity  int      `json:"quantity"`
}

func CreateCartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := uuid.NewString()
		cartMu.Lock()
		cartSessions[sessionId] = cart.New()
		cartMu.Unlock()
		c.JSON(http.StatusOK, gin.H{"session_id": sessionId})
	}
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.Param("session_id")

		cartMu.Lock()
		defer cartMu.Unlock()
		sessionCart, ok := cartSessions[sessionId]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart session was not found"})
			return
		}
		c.JSON(http.StatusOK, cartView(sessionCart))
	}
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		sessionId := c.Param("session_id")

		var req cartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		draft, err := draftFromCatalog(ctx, req, c.DefaultQuery("locale", "en"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if req.Quantity > 0 {
			draft.SetQuantity(req.Quantity)
		}
		candidate := draft.Candidate()

		cartMu.Lock()
		defer cartMu.Unlock()
		sessionCart, ok := cartSessions[sessionId]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart session was not found"})
			return
		}
		for i := 0; i < draft.Quantity(); i++ {
			sessionCart.Add(candidate)
		}
		c.JSON(http.StatusOK, cartView(sessionCart))
	}
}

func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.Param("session_id")

		var req cartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cartMu.Lock()
		defer cartMu.Unlock()
		sessionCart, ok := cartSessions[sessionId]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart session was not found"})
			return
		}
		identity := cart.IdentityOfIDs(cart.Kind(req.Kind), req.ProductID, req.AddOnIDs)
		sessionCart.SetQuantity(identity, req.Quantity)
		c.JSON(http.StatusOK, cartView(sessionCart))
	}
}

func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.Param("session_id")

		var req cartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cartMu.Lock()
		defer cartMu.Unlock()
		sessionCart, ok := cartSessions[sessionId]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart session was not found"})
			return
		}
		sessionCart.Remove(cart.IdentityOfIDs(cart.Kind(req.Kind), req.ProductID, req.AddOnIDs))
		c.JSON(http.StatusOK, cartView(sessionCart))
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.Param("session_id")

		cartMu.Lock()
		defer cartMu.Unlock()
		sessionCart, ok := cartSessions[sessionId]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart session was not found"})
			return
		}
		sessionCart.Clear()
		c.JSON(http.StatusOK, cartView(sessionCart))
	}
}

// cartView renders the lines with their totals and free-line labels. Callers
// must hold cartMu.
func cartView(sessionCart *cart.Cart) gin.H {
	lines := sessionCart.Lines()
	items := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		item := gin.H{
			"kind":             line.Kind,
			"product_id":       line.ProductID,
			"display_name":     line.DisplayName,
			"base_price":       line.BasePrice,
			"quantity":         line.Quantity,
			"image_ref":        line.ImageRef,
			"selected_add_ons": line.SelectedAddOns,
			"line_total":       cart.EffectivePrice(line) * float64(line.Quantity),
		}
		if label := cart.FreeLabel(line, lines); label != "" {
			item["label"] = label
		}
		items = append(items, item)
	}
	return gin.H{"items": items, "totals": sessionCart.Totals()}
}

// draftFromCatalog resolves the product and the requested add-ons against
// the catalog collections and composes the line draft.
func draftFromCatalog(ctx context.Context, req cartItemRequest, locale string) (*cart.Draft, error) {
	switch cart.Kind(req.Kind) {
	case cart.KindDrink:
		var drink models.Drink
		if err := drinkCollection.FindOne(ctx, bson.M{"drink_id": req.ProductID}).Decode(&drink); err != nil {
			return nil, errDrinkNotFound
		}
		price := 0.0
		if drink.Price != nil {
			price = *drink.Price
		}
		draft := cart.NewDraft(cart.KindDrink, drink.Drink_id, drink.Name.In(locale), price)
		if drink.Image != nil {
			draft.ImageRef = *drink.Image
		}
		return draft, nil
	default:
		var meal models.Meal
		if err := mealCollection.FindOne(ctx, bson.M{"meal_id": req.ProductID}).Decode(&meal); err != nil {
			return nil, errMealNotFound
		}
		price := 0.0
		if meal.Price != nil {
			price = *meal.Price
		}
		draft := cart.NewDraft(cart.KindMeal, meal.Meal_id, meal.Name.In(locale), price)
		draft.CategorySlug = meal.Category_slug
		if meal.Image != nil {
			draft.ImageRef = *meal.Image
		}
		for _, addOnId := range req.AddOnIDs {
			var ingredient models.Ingredient
			if err := ingredientCollection.FindOne(ctx, bson.M{"ingredient_id": addOnId, "is_add_on": true}).Decode(&ingredient); err != nil {
				return nil, errAddOnNotFound
			}
			draft.Toggle(cart.AddOn{
				ID:    ingredient.Ingredient_id,
				Name:  ingredient.Name.In(locale),
				Price: ingredient.Price,
			})
		}
		return draft, nil
	}
}
