// File: staynest/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	AIChatHandler gin.HandlerFunc

	// Session endpoints
	SignOutHandler gin.HandlerFunc
}
