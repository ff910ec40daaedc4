package domain

import (
	"time"

	"github.com/google/uuid"
)

type Capability string

const (
	CapViewFlights    Capability = "flights:view"
	CapManageFlights  Capability = "flights:manage"
	CapManageAirports Capability = "airports:manage"
	CapBookTickets    Capability = "tickets:book"
	CapViewReports    Capability = "reports:view"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
)

var roleCapabilities = map[Role][]Capability{
	RoleCustomer: {CapViewFlights, CapBookTickets},
	RoleManager:  {CapViewFlights, CapManageFlights, CapManageAirports, CapBookTickets, CapViewReports},
}

func (r Role) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

// Customer is the booking principal, created 1:1 with a user account.
type Customer struct {
	ID           uuid.UUID
	UserID       *uuid.UUID
	Name         string
	Phone        string
	IdentityCode string
	ProfilePic   string
	Roles        []Role
	CreatedAt    time.Time
}

func (c *Customer) Can(cap Capability) bool {
	for _, r := range c.Roles {
		if r.Can(cap) {
			return true
		}
	}
	return false
}
