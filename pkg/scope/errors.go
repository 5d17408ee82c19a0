package scope

import "errors"

var (
	// ErrOutOfScopeContextAccess is returned when context is read while no
	// component scope is active.
	ErrOutOfScopeContextAccess = errors.New("context accessed outside a registered component")

	// ErrOutOfScopeNestedUse is returned when a nested component wrapper is
	// created outside a render chain.
	ErrOutOfScopeNestedUse = errors.New("nested use outside a component chained from render")
)
