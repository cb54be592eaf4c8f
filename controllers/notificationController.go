package controllers

import (
	"net/http"
	"sync"

	"go-ordering-storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var (
	orderFeedConns = make(map[*websocket.Conn]bool)
	orderFeedMu    sync.Mutex
)

// OrderFeed subscribes a websocket client to status change notifications for
// all orders.
func OrderFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
			return
		}

		orderFeedMu.Lock()
		orderFeedConns[conn] = true
		orderFeedMu.Unlock()

		go func() {
			defer func() {
				orderFeedMu.Lock()
				delete(orderFeedConns, conn)
				orderFeedMu.Unlock()
				conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

// notifyClients pushes a status notification to every subscriber. Broken
// connections are dropped on the spot.
func notifyClients(n models.StatusNotification) {
	orderFeedMu.Lock()
	defer orderFeedMu.Unlock()
	for conn := range orderFeedConns {
		if err := conn.WriteJSON(n); err != nil {
			conn.Close()
			delete(orderFeedConns, conn)
		}
	}
}
