package ecs

import (
	"fmt"
	"log"
)

// ErrorCode identifies one of the recoverable or fatal conditions the ECS
// recognizes (spec §7).
type ErrorCode string

const (
	ErrComponentCapExceeded ErrorCode = "component_cap_exceeded"
	ErrDuplicateComponent   ErrorCode = "duplicate_component"
	ErrMissingComponent     ErrorCode = "missing_component"
	ErrDanglingHandle       ErrorCode = "dangling_handle"
	ErrSingletonMissing     ErrorCode = "singleton_missing"
	ErrQueryTempWarning     ErrorCode = "query_temp_warning"
	ErrRedundantOrderBy     ErrorCode = "redundant_order_by"
	ErrEntityNotFound       ErrorCode = "entity_not_found"
)

// ECSError carries structured context for a recoverable ECS condition.
// The package itself reports its conditions as formatted log lines through
// warnf/fatalf and does not return or log ECSError values.
type ECSError struct {
	Code      ErrorCode
	Message   string
	Entity    EntityID
	Component ComponentTypeID
	Details   string
}

// Error implements the error interface.
func (e *ECSError) Error() string {
	if e.Entity != InvalidEntityID && e.Component != InvalidComponentTypeID {
		return fmt.Sprintf("[%s] %s (entity=%d component=%d)", e.Code, e.Message, e.Entity, e.Component)
	}
	if e.Entity != InvalidEntityID {
		return fmt.Sprintf("[%s] %s (entity=%d)", e.Code, e.Message, e.Entity)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func newECSError(code ErrorCode, msg string) *ECSError {
	return &ECSError{Code: code, Message: msg, Entity: InvalidEntityID, Component: InvalidComponentTypeID}
}

// warnf logs a recoverable programmer-error condition (spec §7: debug
// builds would assert, release builds warn and continue). hearth-ecs has
// no build-tag-gated debug mode; it always logs and continues, matching
// the teacher's own always-log-never-panic error policy (errors.go).
func warnf(format string, args ...any) {
	log.Printf("ecs: warning: "+format, args...)
}

// fatalf logs and aborts the process for conditions spec §7 marks Fatal
// (today, only ComponentCapExceeded).
func fatalf(format string, args ...any) {
	log.Fatalf("ecs: fatal: "+format, args...)
}
