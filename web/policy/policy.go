// Package policy centralizes authorization decisions. Role-based row
// filtering is expressed as a pure function producing a gorm scope, so
// every store call composes the same predicate and the decision is
// testable on its own.
package policy

import (
	"gorm.io/gorm"

	"tickpanel/database/model"
)

// Identity is the authenticated caller, as carried by a bearer token.
type Identity struct {
	UserId   string
	Username string
	Role     string
}

// TicketScope narrows ticket queries for client-role identities to rows
// whose client attribute equals their username. Every other role sees
// all rows unscoped. A miss under this scope must surface as not-found,
// never as a distinct forbidden.
func TicketScope(id Identity) func(*gorm.DB) *gorm.DB {
	if id.Role == model.RoleClient {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("client = ?", id.Username)
		}
	}
	return func(db *gorm.DB) *gorm.DB {
		return db
	}
}
