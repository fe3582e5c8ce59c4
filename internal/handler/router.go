package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accountrest/account-service/internal/middleware"
)

// NewRouter builds the service router: security headers and request logging
// on every route, the account CRUD surface, and JSON bodies for 404/405.
func NewRouter(store AccountStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeaders())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		middleware.RespondWithError(c, http.StatusMethodNotAllowed,
			fmt.Sprintf("Method %s is not allowed on %s", c.Request.Method, c.Request.URL.Path))
	})
	router.NoRoute(func(c *gin.Context) {
		middleware.RespondWithError(c, http.StatusNotFound, "Resource not found")
	})

	router.GET("/health", Health)
	router.GET("/", Index)

	h := NewAccountHandler(store)
	accounts := router.Group("/accounts")
	{
		accounts.POST("", h.CreateAccount)
		accounts.GET("", h.ListAccounts)
		accounts.GET("/:id", h.GetAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
	}

	return router
}
