// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUnauthorized       = errors.New("unauthorized")

	// Group-related errors
	ErrGroupNotFound    = errors.New("community group not found")
	ErrOrphanedGroup    = errors.New("sub-group has no parent group")
	ErrWrongTenant      = errors.New("target is outside the caller's community")
	ErrGroupNotEmpty    = errors.New("community group still has members or configuration")
	ErrNotResidentGroup = errors.New("residents must belong to a sub-group")
	ErrNotTopLevelGroup = errors.New("operation requires a top-level group")

	// Dues-related errors
	ErrDuesNotConfigured = errors.New("no dues rule configured for the group hierarchy")
	ErrDuesRuleNotFound  = errors.New("dues rule not found")

	// Role label errors
	ErrRoleLabelNotFound = errors.New("role label override not found")
	ErrInvalidRoleLabel  = errors.New("role label must be between 1 and 50 characters")
	ErrInvalidRoleType   = errors.New("invalid role type")

	// Payment-related errors
	ErrPaymentNotFound       = errors.New("payment transaction not found")
	ErrInvalidMonths         = errors.New("months must be between 1 and 12")
	ErrDuplicateContribution = errors.New("contribution already recorded for this period")

	// Fund request errors
	ErrFundRequestNotFound = errors.New("fund request not found")
	ErrFundRequestDecided  = errors.New("fund request has already been decided")
)
