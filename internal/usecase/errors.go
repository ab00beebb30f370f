package usecase

// Códigos de erro de domínio expostos para a camada HTTP.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodePersistence = "PERSISTENCE_ERROR"
	CodeAlreadySent = "ALREADY_SENT"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func NewValidationError(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

func NewPersistenceError(message string) *DomainError {
	return &DomainError{Code: CodePersistence, Message: message}
}

func NewAlreadySentError(message string) *DomainError {
	return &DomainError{Code: CodeAlreadySent, Message: message}
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
