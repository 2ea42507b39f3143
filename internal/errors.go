package internal

import "errors"

var (
	ErrGatewayAuth     = errors.New("pesapal rejected the auth credentials")
	ErrOrderSubmission = errors.New("pesapal rejected the order submission")
	ErrStatusQuery     = errors.New("pesapal status query failed")

	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")

	ErrTransactionConflict = errors.New("storage transaction conflict")
)
