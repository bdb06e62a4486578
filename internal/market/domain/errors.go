package domain

import "fmt"

const (
	EntityProduct = "product"
	EntityBuyer   = "buyer"
	EntitySeller  = "seller"
	EntityUser    = "user"
	EntityReport  = "report"
	EntityRoom    = "chat room"
)

const (
	ReasonAlreadySold         = "already_sold"
	ReasonNotAvailable        = "not_available"
	ReasonSelfPurchase        = "self_purchase"
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonInvalidTargetType   = "invalid_target_type"
	ReasonEmptyReason         = "empty_reason"
	ReasonInvalidStatus       = "invalid_status"
	ReasonInvalidProduct      = "invalid_product"
	ReasonInvalidProfile      = "invalid_profile"
	ReasonInvalidRoom         = "invalid_room"
	ReasonInvalidMessage      = "invalid_message"
)

//region NotFoundError

type NotFoundError struct {
	Entity string
	Msg    string
}

func NewNotFoundError(entity string, id int) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		Msg:    fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

//endregion

//region ConflictError

type ConflictError struct {
	Reason string
	Msg    string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

//endregion

//region InvalidOperationError

type InvalidOperationError struct {
	Reason string
	Msg    string
}

func (e *InvalidOperationError) Error() string {
	return e.Msg
}

func (e *InvalidOperationError) Is(target error) bool {
	_, ok := target.(*InvalidOperationError)
	return ok
}

//endregion

//region ForbiddenError

type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string {
	return e.Msg
}

func (e *ForbiddenError) Is(target error) bool {
	_, ok := target.(*ForbiddenError)
	return ok
}

//endregion

//region IntegrityError

// IntegrityError reports stored data that violates referential integrity. Err holds the concrete cause.
type IntegrityError struct {
	Msg string
	Err error
}

func (e *IntegrityError) Error() string {
	return e.Msg
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func (e *IntegrityError) Is(target error) bool {
	_, ok := target.(*IntegrityError)
	return ok
}

//endregion
