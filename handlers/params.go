package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the named numeric path parameter. On a malformed value it
// answers 400 itself and returns false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid " + name + " parameter",
			"details": "expected a positive integer, got " + raw,
		})
		return 0, false
	}
	return uint(id), true
}
