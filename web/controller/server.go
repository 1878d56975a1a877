package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickpanel/web/service"
)

// ServerController exposes runtime status for operators.
type ServerController struct {
	statusService service.StatusService
}

// NewServerController creates a new ServerController and sets up its routes.
func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/server")

	g.GET("/status", a.status)
}

func (a *ServerController) status(c *gin.Context) {
	jsonObj(c, http.StatusOK, a.statusService.GetStatus())
}
