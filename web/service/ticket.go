package service

import (
	"tickpanel/database"
	"tickpanel/database/model"
	"tickpanel/web/policy"
)

// TicketService implements ticket CRUD. Every read, update and delete
// runs under the caller's policy scope.
type TicketService struct{}

func validateTicket(title, status string) error {
	if title == "" || status == "" {
		return newValidationError("", "Title and status are required")
	}
	if !model.ValidTicketStatus(status) {
		return newValidationError("status", "Unknown ticket status")
	}
	return nil
}

func (s *TicketService) CreateTicket(ticket *model.Ticket) (*model.Ticket, error) {
	if ticket.Status == "" {
		ticket.Status = model.StatusBacklog
	}
	if err := validateTicket(ticket.Title, ticket.Status); err != nil {
		return nil, err
	}
	if err := database.GetDB().Create(ticket).Error; err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) GetTickets(id policy.Identity) ([]model.Ticket, error) {
	db := database.GetDB()
	tickets := make([]model.Ticket, 0)
	err := db.Model(model.Ticket{}).
		Scopes(policy.TicketScope(id)).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *TicketService) GetTicket(id policy.Identity, ticketId string) (*model.Ticket, error) {
	db := database.GetDB()
	ticket := &model.Ticket{}
	err := db.Model(model.Ticket{}).
		Scopes(policy.TicketScope(id)).
		Where("id = ?", ticketId).
		First(ticket).Error
	if database.IsNotFound(err) {
		return nil, ErrTicketNotFound
	} else if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) UpdateTicket(id policy.Identity, ticketId string, updated *model.Ticket) (*model.Ticket, error) {
	if err := validateTicket(updated.Title, updated.Status); err != nil {
		return nil, err
	}

	ticket, err := s.GetTicket(id, ticketId)
	if err != nil {
		return nil, err
	}

	ticket.Title = updated.Title
	ticket.Description = updated.Description
	ticket.Status = updated.Status
	ticket.Client = updated.Client
	ticket.AssignedTo = updated.AssignedTo

	if err := database.GetDB().Save(ticket).Error; err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) DeleteTicket(id policy.Identity, ticketId string) error {
	db := database.GetDB()
	result := db.Scopes(policy.TicketScope(id)).
		Where("id = ?", ticketId).
		Delete(&model.Ticket{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}
