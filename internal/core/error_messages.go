package core

// error_messages.go maps technical errors to user-facing messages with codes
// for support reference.
//
// # Table Errors (TBL001-TBL099)
//
//	TBL001 - Unknown table: the requested list page does not exist
//	TBL002 - Invalid definition: a catalog entry is malformed
//
// # Session Errors (SES001-SES099)
//
//	SES001 - Session expired: the table session was not found
//	SES002 - Too many sessions: the session limit was reached
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Load failed: records could not be loaded
//	SRC002 - Connection refused: unable to reach the database
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - Busy: every export slot is taken
//
// # Request Errors
//
//	REQ001 - Request cancelled
//	REQ002 - Request timed out
//	RATE001 - Rate limit exceeded
//
// Anything else maps to ERR000.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the service.
var (
	ErrTableNotFound     = errors.New("table not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrTooManySessions   = errors.New("too many sessions")
	ErrInvalidDefinition = errors.New("invalid table definition")
	ErrSourceLoad        = errors.New("load records")
)

// UserMessage contains user-friendly error information.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type sentinelMessage struct {
	err error
	msg UserMessage
}

// sentinelMessages are checked with errors.Is before any text pattern.
var sentinelMessages = []sentinelMessage{
	{ErrTableNotFound, UserMessage{
		Message: "This list does not exist",
		Action:  "Pick a list from the dashboard",
		Code:    "TBL001",
	}},
	{ErrInvalidDefinition, UserMessage{
		Message: "A list definition is malformed",
		Action:  "Check the table catalog file",
		Code:    "TBL002",
	}},
	{ErrSessionNotFound, UserMessage{
		Message: "This table view has expired",
		Action:  "Reload the page to start a new view",
		Code:    "SES001",
	}},
	{ErrTooManySessions, UserMessage{
		Message: "Too many open table views",
		Action:  "Please wait a moment and try again",
		Code:    "SES002",
	}},
	{ErrTooManyExports, UserMessage{
		Message: "Too many exports are running",
		Action:  "Please wait a moment and try the download again",
		Code:    "EXP001",
	}},
	{context.Canceled, UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "REQ001",
	}},
	{context.DeadlineExceeded, UserMessage{
		Message: "Request timed out",
		Action:  "Narrow the search or try again later",
		Code:    "REQ002",
	}},
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "SRC002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a minute before trying again",
			Code:    "RATE001",
		},
	},
}

// sourceMessage is used for ErrSourceLoad when no more specific cause matched.
var sourceMessage = UserMessage{
	Message: "Records could not be loaded",
	Action:  "Please try again or contact support",
	Code:    "SRC001",
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.err) {
			return sm.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	if errors.Is(err, ErrSourceLoad) {
		return sourceMessage
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to something more specific than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError wraps a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original error for logging
	User      UserMessage // Message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil for a nil error.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{Technical: err, User: MapError(err)}
}
