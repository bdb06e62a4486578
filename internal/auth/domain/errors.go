package domain

//region CredentialsMismatchError

type CredentialsMismatchError struct {
	Msg string
}

func (e *CredentialsMismatchError) Error() string {
	return e.Msg
}

func (e *CredentialsMismatchError) Is(target error) bool {
	_, ok := target.(*CredentialsMismatchError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region EmailTakenError

type EmailTakenError struct {
	Msg string
}

func (e *EmailTakenError) Error() string {
	return e.Msg
}

func (e *EmailTakenError) Is(target error) bool {
	_, ok := target.(*EmailTakenError)
	return ok
}

//endregion

//region UserSuspendedError

type UserSuspendedError struct {
	Msg string
}

func (e *UserSuspendedError) Error() string {
	return e.Msg
}

func (e *UserSuspendedError) Is(target error) bool {
	_, ok := target.(*UserSuspendedError)
	return ok
}

//endregion

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion
