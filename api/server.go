package api

import (
	"github.com/gin-gonic/gin"
)

// StartServer initializes the REST API and blocks serving it.
func StartServer(addr string) error {
	r := gin.Default()
	SetupRoutes(r)
	return r.Run(addr)
}
