package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickpanel/database/model"
	"tickpanel/web/policy"
)

func clientIdentity(username string) policy.Identity {
	return policy.Identity{UserId: "u-" + username, Username: username, Role: model.RoleClient}
}

func adminIdentity() policy.Identity {
	return policy.Identity{UserId: "u-admin", Username: "admin", Role: model.RoleAdmin}
}

func seedTickets(t *testing.T, svc *TicketService) (acme *model.Ticket, globex *model.Ticket) {
	t.Helper()
	acme, err := svc.CreateTicket(&model.Ticket{
		Title:  "Landing page revamp",
		Status: model.StatusInProgress,
		Client: "acme",
	})
	require.NoError(t, err)
	globex, err = svc.CreateTicket(&model.Ticket{
		Title:  "Invoice export",
		Status: model.StatusBacklog,
		Client: "globex",
	})
	require.NoError(t, err)
	return acme, globex
}

func TestTicketValidation(t *testing.T) {
	initTestDB(t)
	svc := &TicketService{}

	var validationErr *ValidationError

	_, err := svc.CreateTicket(&model.Ticket{Status: model.StatusBacklog})
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateTicket(&model.Ticket{Title: "x", Status: "done"})
	assert.ErrorAs(t, err, &validationErr)

	// empty status falls back to backlog
	ticket, err := svc.CreateTicket(&model.Ticket{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusBacklog, ticket.Status)
	assert.Equal(t, "None", ticket.AssignedTo)
	assert.NotEmpty(t, ticket.Id)
}

func TestTicketClientScoping(t *testing.T) {
	initTestDB(t)
	svc := &TicketService{}
	acme, globex := seedTickets(t, svc)

	// a client lists only its own tickets
	tickets, err := svc.GetTickets(clientIdentity("acme"))
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, acme.Id, tickets[0].Id)

	// fetching another client's ticket by id is not-found, not forbidden
	_, err = svc.GetTicket(clientIdentity("acme"), globex.Id)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	got, err := svc.GetTicket(clientIdentity("acme"), acme.Id)
	require.NoError(t, err)
	assert.Equal(t, acme.Title, got.Title)
}

func TestTicketAdminUnscoped(t *testing.T) {
	initTestDB(t)
	svc := &TicketService{}
	_, globex := seedTickets(t, svc)

	tickets, err := svc.GetTickets(adminIdentity())
	require.NoError(t, err)
	assert.Len(t, tickets, 2)

	got, err := svc.GetTicket(adminIdentity(), globex.Id)
	require.NoError(t, err)
	assert.Equal(t, "globex", got.Client)
}

func TestTicketUpdateScoped(t *testing.T) {
	initTestDB(t)
	svc := &TicketService{}
	acme, globex := seedTickets(t, svc)

	updated, err := svc.UpdateTicket(clientIdentity("acme"), acme.Id, &model.Ticket{
		Title:  "Landing page revamp",
		Status: model.StatusClientReview,
		Client: "acme",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusClientReview, updated.Status)

	_, err = svc.UpdateTicket(clientIdentity("acme"), globex.Id, &model.Ticket{
		Title:  "Invoice export",
		Status: model.StatusComplete,
		Client: "globex",
	})
	assert.ErrorIs(t, err, ErrTicketNotFound)

	// the other client's ticket is untouched
	got, err := svc.GetTicket(adminIdentity(), globex.Id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusBacklog, got.Status)
}

func TestTicketDeleteScoped(t *testing.T) {
	initTestDB(t)
	svc := &TicketService{}
	acme, globex := seedTickets(t, svc)

	assert.ErrorIs(t, svc.DeleteTicket(clientIdentity("acme"), globex.Id), ErrTicketNotFound)
	require.NoError(t, svc.DeleteTicket(clientIdentity("acme"), acme.Id))

	tickets, err := svc.GetTickets(adminIdentity())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, globex.Id, tickets[0].Id)
}
