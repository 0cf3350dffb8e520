package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumibond/corkboard/server/middlewares"
	"gorm.io/gorm"
)

// API holds every dependency the request handlers require. It serves as
// dependency injection for the app, add any dependencies you require here.
type API struct {
	DB       *gorm.DB
	TokenTTL time.Duration
}

func New(db *gorm.DB, tokenTTL time.Duration) *API {
	return &API{DB: db, TokenTTL: tokenTTL}
}

// callerID returns the identity the session middleware resolved for this
// request, or empty string for an anonymous caller.
func callerID(c *gin.Context) string {
	return c.GetHeader(middlewares.CallerHeader)
}
