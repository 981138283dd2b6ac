package service

import "fmt"

const CodeNotFound = "NOT_FOUND"
const CodeValidation = "VALIDATION_ERROR"
const CodeSaveFailed = "SAVE_FAILED"

// BusinessError — ошибка бизнес-логики с кодом для слоя HTTP.
// Три исхода различаются всегда: неверный ввод, «не найдено», «не сохранилось».
type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(resource string, id int64) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %d не найдена", resource, id),
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("неверное значение поля '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}

func NewSaveFailed(collection string, err error) *BusinessError {
	return &BusinessError{
		Code:    CodeSaveFailed,
		Message: fmt.Sprintf("не удалось сохранить коллекцию '%s'", collection),
		Details: map[string]any{
			"collection": collection,
		},
		Err: err,
	}
}
