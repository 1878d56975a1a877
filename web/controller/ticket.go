package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickpanel/database/model"
	"tickpanel/web/service"
	"tickpanel/web/session"
)

// TicketController handles ticket CRUD. All routes sit behind the auth
// middleware; the caller's identity drives the policy scope.
type TicketController struct {
	ticketService service.TicketService
}

// NewTicketController creates a new TicketController and sets up its routes.
func NewTicketController(g *gin.RouterGroup) *TicketController {
	a := &TicketController{}
	a.initRouter(g)
	return a
}

func (a *TicketController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/tickets")

	g.GET("", a.getTickets)
	g.GET("/:id", a.getTicket)
	g.POST("", a.createTicket)
	g.PUT("/:id", a.updateTicket)
	g.DELETE("/:id", a.deleteTicket)
}

func (a *TicketController) getTickets(c *gin.Context) {
	identity, _ := session.GetIdentity(c)
	tickets, err := a.ticketService.GetTickets(identity)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, http.StatusOK, tickets)
}

func (a *TicketController) getTicket(c *gin.Context) {
	identity, _ := session.GetIdentity(c)
	ticket, err := a.ticketService.GetTicket(identity, c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, http.StatusOK, ticket)
}

func (a *TicketController) createTicket(c *gin.Context) {
	ticket := &model.Ticket{}
	if err := c.ShouldBindJSON(ticket); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ticket, err := a.ticketService.CreateTicket(ticket)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, http.StatusCreated, ticket)
}

func (a *TicketController) updateTicket(c *gin.Context) {
	identity, _ := session.GetIdentity(c)

	updated := &model.Ticket{}
	if err := c.ShouldBindJSON(updated); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ticket, err := a.ticketService.UpdateTicket(identity, c.Param("id"), updated)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonObj(c, http.StatusOK, ticket)
}

func (a *TicketController) deleteTicket(c *gin.Context) {
	identity, _ := session.GetIdentity(c)
	if err := a.ticketService.DeleteTicket(identity, c.Param("id")); err != nil {
		jsonError(c, err)
		return
	}
	jsonMsg(c, http.StatusOK, "Ticket deleted")
}
