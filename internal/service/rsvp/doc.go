// Package rsvp implements the guest lookup and RSVP submission workflows.
//
// The service layer contains all validation and state-transition logic for
// the RSVP flow. It depends on the repository interface defined in this
// package and should never import from api/.
//
// Repository implementations live in repository/postgres/.
package rsvp
