package controller

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tickpanel/logger"
	"tickpanel/web/entity"
	"tickpanel/web/service"
)

// getRemoteIp extracts the real IP address from the request headers or
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonObj sends a successful JSON response with an object.
func jsonObj(c *gin.Context, statusCode int, obj any) {
	c.JSON(statusCode, entity.Msg{
		Success: true,
		Obj:     obj,
	})
}

// jsonMsg sends a successful JSON response with a message text.
func jsonMsg(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: true,
		Msg:     msg,
	})
}

// jsonMsgObj sends a successful JSON response with both.
func jsonMsgObj(c *gin.Context, statusCode int, msg string, obj any) {
	c.JSON(statusCode, entity.Msg{
		Success: true,
		Msg:     msg,
		Obj:     obj,
	})
}

// pureJsonMsg sends a JSON message response with custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// jsonError translates a service error into the fixed HTTP taxonomy.
// Raw infrastructure details never reach the caller; they go to the log.
func jsonError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &conflictErr),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidResetToken):
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
	case errors.Is(err, service.ErrTicketNotFound):
		pureJsonMsg(c, http.StatusNotFound, false, err.Error())
	case errors.Is(err, service.ErrSecretMissing):
		logger.Error("request from", getRemoteIp(c), "rejected:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "Server configuration error")
	case errors.Is(err, service.ErrMailDelivery):
		pureJsonMsg(c, http.StatusInternalServerError, false, "Failed to send reset email. Please try again.")
	default:
		logger.Error("internal error on", c.Request.Method, c.Request.URL.Path, ":", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "Internal server error")
	}
}
