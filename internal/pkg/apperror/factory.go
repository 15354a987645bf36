package apperror

// New is the generic constructor for AppError.
func New(code, message string, kind Kind, err ...error) *AppError {
	appErr := &AppError{
		Code:    code,
		Message: message,
		Kind:    kind,
	}
	if len(err) > 0 && err[0] != nil {
		appErr.Err = err[0]
	}
	return appErr
}

// NewPersistance creates an error with KindPersistance.
// Optional: Pass an existing error as the 3rd argument to wrap it.
func NewPersistance(code, message string, err ...error) *AppError {
	return New(code, message, KindPersistance, err...)
}

// NewTransient creates an error with KindTransient.
// Optional: Pass an existing error as the 3rd argument to wrap it.
func NewTransient(code, message string, err ...error) *AppError {
	return New(code, message, KindTransient, err...)
}

// NewInternal creates an error with KindInternal.
// Optional: Pass an existing error as the 3rd argument to wrap it.
func NewInternal(code, message string, err ...error) *AppError {
	return New(code, message, KindInternal, err...)
}

// NewNotFound creates an error with KindNotFound.
func NewNotFound(code, message string, err ...error) *AppError {
	return New(code, message, KindNotFound, err...)
}

// NewParse creates an error with KindParse.
func NewParse(code, message string, err ...error) *AppError {
	return New(code, message, KindParse, err...)
}

// NewValidate creates an error with KindValidate. fields carries the
// reconstructed field → messages map, mirroring a downstream 400 payload.
func NewValidate(code, message string, fields map[string][]string) *AppError {
	appErr := New(code, message, KindValidate)
	appErr.Details = fields
	return appErr
}

// NewHttpClient creates an error with KindHttpClient, wrapping the cause
// returned by a downstream call (transport failure or non-2xx response).
func NewHttpClient(code, message string, err ...error) *AppError {
	return New(code, message, KindHttpClient, err...)
}

// NewRpcClient creates an error with KindRpcClient.
func NewRpcClient(code, message string, err ...error) *AppError {
	return New(code, message, KindRpcClient, err...)
}

// NewForbidden creates an error with KindForbidden.
func NewForbidden(code, message string, err ...error) *AppError {
	return New(code, message, KindForbidden, err...)
}

// NewUnknown creates an error with KindUnknown, the catch-all for
// unclassifiable downstream failures.
func NewUnknown(code, message string, err ...error) *AppError {
	return New(code, message, KindUnknown, err...)
}
