package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference.
//
// # Input File Errors (FILE001-FILE099)
//
//	FILE001 - Missing input: An input file could not be opened
//	          Action: Check PRODUCTS_CSV, ORDERS_CSV and CUSTOMERS_CSV
//	          Match: *MissingFileError
//
//	FILE002 - Invalid CSV: An input file is not valid CSV
//	          Action: Ensure the file is comma-separated UTF-8
//	          Patterns: "invalid csv"
//
//	FILE003 - Empty file: An input file has no header row
//	          Action: Add the header row to the file
//	          Match: ErrEmptyFile
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Missing column: A row lacks a required column
//	         Action: Check that every row has all columns of the header
//	         Match: *MalformedRowError
//
//	VAL002 - Invalid number: A cost value is not a number
//	         Action: Use a plain decimal such as 2.98
//	         Match: *InvalidNumericFieldError
//
// # Report Errors (RPT001-RPT099)
//
//	RPT001 - Unknown report
//	         Patterns: "unknown report"
//
//	RPT002 - Unknown format
//	         Patterns: "unknown format"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled
//	         Patterns: "context canceled"
//
//	REQ002 - Request timeout
//	         Patterns: "context deadline exceeded"
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Typed errors are checked with errors.As
// first; string patterns are matched case-insensitively afterwards and the
// first match wins.

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgMissingFile = UserMessage{
		Message: "An input file could not be opened",
		Action:  "Check PRODUCTS_CSV, ORDERS_CSV and CUSTOMERS_CSV",
		Code:    "FILE001",
	}
	msgEmptyFile = UserMessage{
		Message: "An input file has no header row",
		Action:  "Add the header row to the file",
		Code:    "FILE003",
	}
	msgMalformedRow = UserMessage{
		Message: "A row is missing a required column",
		Action:  "Check that every row has all columns of the header",
		Code:    "VAL001",
	}
	msgInvalidNumber = UserMessage{
		Message: "Invalid number format detected",
		Action:  "Use a plain decimal such as 2.98",
		Code:    "VAL002",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "An input file is not valid CSV",
			Action:  "Ensure the file is comma-separated UTF-8",
			Code:    "FILE002",
		},
	},
	{
		pattern: "unknown report",
		msg: UserMessage{
			Message: "The requested report does not exist",
			Action:  "Use one of: order-cost, purchased-products, customers-ranking",
			Code:    "RPT001",
		},
	},
	{
		pattern: "unknown format",
		msg: UserMessage{
			Message: "The requested output format is not supported",
			Action:  "Use one of: csv, json, table, parquet",
			Code:    "RPT002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again later",
			Code:    "REQ002",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for the technical error",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var (
		missing   *MissingFileError
		malformed *MalformedRowError
		numeric   *InvalidNumericFieldError
	)
	switch {
	case errors.As(err, &missing):
		return msgMissingFile
	case errors.As(err, &malformed):
		return msgMalformedRow
	case errors.As(err, &numeric):
		return msgInvalidNumber
	case errors.Is(err, ErrEmptyFile):
		return msgEmptyFile
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
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

// IsUserFacing reports whether err maps to a specific code rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
