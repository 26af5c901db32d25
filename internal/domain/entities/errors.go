package entities

import (
	"errors"
	"fmt"
)

// Error categories. Specific domain errors below wrap one of these, so
// callers can match either the exact error or its category with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrDomainRule   = errors.New("domain rule broken")
)

var (
	ErrInvalidVehicleID    = fmt.Errorf("%w: invalid vehicle id", ErrInvalidInput)
	ErrInvalidServiceRef   = fmt.Errorf("%w: invalid service reference", ErrInvalidInput)
	ErrInvalidStockItemRef = fmt.Errorf("%w: invalid stock item reference", ErrInvalidInput)

	ErrServiceAlreadyIncluded = fmt.Errorf("%w: service already included in the order", ErrConflict)
	ErrBudgetAlreadyGenerated = fmt.Errorf("%w: budget already generated for the order", ErrConflict)

	ErrServiceNotIncluded = fmt.Errorf("%w: service not included in the order", ErrNotFound)
	ErrItemNotIncluded    = fmt.Errorf("%w: stock item not included in the order", ErrNotFound)

	ErrOrderNotOpenForChanges = fmt.Errorf("%w: line items can only change while the order is received or in diagnosis", ErrDomainRule)
	ErrOrderNotReceived       = fmt.Errorf("%w: diagnosis can only start on a received order", ErrDomainRule)
	ErrOrderNotInDiagnosis    = fmt.Errorf("%w: budget can only be generated while in diagnosis", ErrDomainRule)
	ErrOrderHasNoLineItems    = fmt.Errorf("%w: budget requires at least one service or item", ErrDomainRule)
	ErrOrderNotAwaitingBudget = fmt.Errorf("%w: order is not awaiting budget approval", ErrDomainRule)
	ErrOrderHasNoBudget       = fmt.Errorf("%w: order has no generated budget", ErrDomainRule)
	ErrOrderNotInExecution    = fmt.Errorf("%w: order is not in execution", ErrDomainRule)
	ErrOrderNotFinished       = fmt.Errorf("%w: only a finished order can be delivered", ErrDomainRule)
)
