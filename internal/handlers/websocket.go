package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/modorcea/rentacar-backend/internal/services"
)

// WebSocketHandler connects an admin dashboard to the reservation
// event feed.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		username := c.GetString("username")

		services.HandleWebSocket(hub, c.Writer, c.Request, userID, username)
	}
}
