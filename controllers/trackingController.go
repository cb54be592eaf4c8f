package controllers

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"go-ordering-storefront/models"
	"go-ordering-storefront/orders"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingView is the read model behind the order progress screen.
type TrackingView struct {
	Order_number string        `json:"order_number"`
	Status       string        `json:"status"`
	Cancelled    bool          `json:"cancelled"`
	Steps        []orders.Step `json:"steps"`
	Item_count   int           `json:"item_count"`
	Total        float64       `json:"total"`
	Updated_at   time.Time     `json:"updated_at"`
}

func trackingView(order models.Order) TrackingView {
	status := orders.Status(order.Status)
	return TrackingView{
		Order_number: order.Order_number,
		Status:       order.Status,
		Cancelled:    status == orders.StatusCancelled,
		Steps:        orders.Steps(status),
		Item_count:   itemCountOf(order),
		Total:        order.Total,
		Updated_at:   order.Updated_at,
	}
}

// TrackOrder renders the fulfillment progress of one order. For a cancelled
// order no step reports progress; the client shows the terminal cancelled
// state instead.
func TrackOrder() gin.HandlerFunc {
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
		c.JSON(http.StatusOK, trackingView(order))
	}
}

func trackingIntervalFromEnv() time.Duration {
	if raw := os.Getenv("TRACKING_POLL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 10 * time.Second
}

// trackingConn serializes writes on one upgraded connection. Poll
// completions run on independent goroutines and a gorilla connection
// supports one concurrent writer only.
type trackingConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (t *trackingConn) writeJSON(v interface{}) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.conn.WriteJSON(v)
}

// WatchOrder streams tracking updates over a websocket while the connection
// is open. A poller fetches the status on a fixed interval; each result is
// pushed as-is, including fetch failures, which surface as a failed frame
// and are retried by the next tick.
func WatchOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("order_number")

		conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
			return
		}
		defer conn.Close()
		tc := &trackingConn{conn: conn}

		fetch := func(ctx context.Context) (orders.Status, error) {
			var order models.Order
			if err := orderCollection.FindOne(ctx, orderFilter(orderNumber)).Decode(&order); err != nil {
				return "", err
			}
			// Pushes may arrive out of order when a fetch is slow; the
			// latest write wins on the client, which is acceptable for an
			// eventually consistent status display.
			_ = tc.writeJSON(trackingView(order))
			return orders.Status(order.Status), nil
		}

		done := make(chan struct{})
		poller := orders.NewPoller(trackingIntervalFromEnv(), fetch, func(status orders.Status, err error) {
			if err != nil {
				_ = tc.writeJSON(gin.H{"order_number": orderNumber, "error": "failed to load order"})
			}
		})
		poller.Start(c.Request.Context())
		defer poller.Stop()

		// Block until the client goes away; reads only serve to detect the
		// close.
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
		<-done
	}
}
