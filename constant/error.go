package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNetwork
	ErrDecode
	ErrValidation
	ErrServerRejected
	ErrNotFound
	ErrInvalidCredentials
	ErrUnauthorize
	ErrOperationPending
	ErrNotReady
	ErrNoSelection
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNetwork:            "remote service unreachable",
	ErrDecode:             "malformed response from remote service",
	ErrValidation:         "invalid request",
	ErrServerRejected:     "request rejected by remote service",
	ErrNotFound:           "data not found",
	ErrInvalidCredentials: "email or password invalid",
	ErrUnauthorize:        "unauthorize request",
	ErrOperationPending:   "another operation is still in progress",
	ErrNotReady:           "inventory is not loaded",
	ErrNoSelection:        "no product selected",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNetwork:            http.StatusBadGateway,
	ErrDecode:             http.StatusBadGateway,
	ErrValidation:         http.StatusBadRequest,
	ErrServerRejected:     http.StatusBadGateway,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrOperationPending:   http.StatusConflict,
	ErrNotReady:           http.StatusConflict,
	ErrNoSelection:        http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNetwork:            "0002",
	ErrDecode:             "0003",
	ErrValidation:         "0004",
	ErrServerRejected:     "0005",
	ErrNotFound:           "0006",
	ErrInvalidCredentials: "0007",
	ErrUnauthorize:        "0008",
	ErrOperationPending:   "0009",
	ErrNotReady:           "0010",
	ErrNoSelection:        "0011",
}
