package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the page API under rg and the OAuth callback on
// the engine root. The callback must stay outside the API prefix: its
// exact path is what the Google OAuth client has registered as the
// redirect URI.
func RegisterRoutes(rg *gin.RouterGroup, root gin.IRoutes, h Handler) {
	rg.GET("/session", h.Session)

	conn := rg.Group("/connection")
	{
		conn.GET("", h.ConnectionState)
		conn.POST("/status", h.ConnectionStatus)
		conn.POST("/login", h.Login)
		conn.POST("/disconnect", h.Disconnect)
		conn.POST("/logout", h.Logout)
		conn.GET("/authorize", h.Authorize)
	}

	cal := rg.Group("/calendar")
	{
		cal.GET("/events", h.Events)
		cal.GET("/grid", h.Grid)
		cal.POST("/select", h.Select)
		cal.POST("/activate", h.Activate)
		cal.POST("/move", h.Move)
		cal.POST("/resize", h.Resize)
	}

	ed := rg.Group("/editor")
	{
		ed.GET("", h.Editor)
		ed.POST("/form", h.UpdateForm)
		ed.POST("/attendees", h.AddAttendee)
		ed.DELETE("/attendees/:index", h.RemoveAttendee)
		ed.POST("/save", h.Save)
		ed.POST("/delete", h.Delete)
		ed.POST("/close", h.CloseEditor)
	}

	rg.POST("/chat", h.Chat)

	root.GET("/oauth/google/callback", h.OAuthCallback)
}
