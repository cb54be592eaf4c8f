package controllers

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Poll completions push frames from independent goroutines, so the tracking
// connection must keep concurrent writers from interleaving on the wire.
func TestTrackingConnConcurrentWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const writers = 16
	const writesEach = 8

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		tc := &trackingConn{conn: conn}

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < writesEach; j++ {
					if err := tc.writeJSON(gin.H{"writer": i, "seq": j}); err != nil {
						t.Errorf("writeJSON failed: %v", err)
						return
					}
				}
			}(i)
		}
		wg.Wait()
	})

	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	frames := 0
	for {
		var frame map[string]interface{}
		if err := conn.ReadJSON(&frame); err != nil {
			break
		}
		if _, ok := frame["writer"]; !ok {
			t.Fatalf("received a corrupted frame: %v", frame)
		}
		frames++
	}
	if frames != writers*writesEach {
		t.Errorf("received %d intact frames, want %d", frames, writers*writesEach)
	}
}
