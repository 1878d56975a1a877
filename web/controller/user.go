package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickpanel/web/service"
)

// UserController exposes user lookups needed by the ticket board.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController and sets up its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/users")

	g.GET("/clients", a.getClients)
}

// getClients lists the public profiles of all client-role users, so
// tickets can be assigned to a client.
func (a *UserController) getClients(c *gin.Context) {
	clients, err := a.userService.ListClients()
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, http.StatusOK, clients)
}
