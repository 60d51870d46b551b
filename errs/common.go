package errs

import "fmt"

func InvalidBodyErr(err error) error {
	return E(Invalid, "invalid request body", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")

	return E(Invalid, "validation failed", ve.Err())
}

func UnauthorizedErr(message string) error {
	return E(Unauthorized, message, nil)
}

func DuplicateEmailErr(email string) error {
	return E(Conflict, fmt.Sprintf("email %s is already registered", email), nil)
}

func UserNotFoundErr(email string) error {
	return E(NotFound, fmt.Sprintf("user %s not found", email), nil)
}

func TransactionNotFoundErr(id string) error {
	return E(NotFound, fmt.Sprintf("transaction %s not found", id), nil)
}

// GatewayDeclinedErr is the synchronous failure produced by the mock gateway.
func GatewayDeclinedErr(phone string) error {
	return E(Gateway, fmt.Sprintf("payment gateway declined charge for %s", phone), nil)
}
