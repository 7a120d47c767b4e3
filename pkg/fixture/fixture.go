// Package fixture holds the canned payloads served when no database is
// configured (demo mode) and the uniform fallback policy around them:
// a read endpoint that is allowed to degrade serves its named fixture
// instead of erroring, always with HTTP 200.
package fixture

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var payloads = map[string]func() gin.H{
	"menu":    func() gin.H { return gin.H{"menuItems": MenuItems()} },
	"orders":  func() gin.H { return gin.H{"orders": Orders()} },
	"reviews": func() gin.H { return gin.H{"reviews": Reviews()} },
	"stats":   func() gin.H { return gin.H{"stats": Stats()} },
}

// OK writes the named fixture as the handler's success payload.
// Unknown names panic at startup-exercised paths, never in production
// handlers; routes only reference registered names.
func OK(c *gin.Context, name string) {
	build, ok := payloads[name]
	if !ok {
		panic("fixture: unknown fixture " + name)
	}
	c.JSON(http.StatusOK, build())
}
