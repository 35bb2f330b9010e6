package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// FieldError is a single field-level validation failure. The wire shape
// matches what the registration UI already consumes:
// {"detail": [{"loc": ["body", "field"], "msg": "..."}]}.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

type ValidationError struct {
	Detail []FieldError `json:"detail"`
}

func (e *ValidationError) Error() string {
	if len(e.Detail) == 0 {
		return "validation failed"
	}
	msg := ""
	for i, fe := range e.Detail {
		if i > 0 {
			msg += "; "
		}
		field := ""
		if len(fe.Loc) > 0 {
			field = fe.Loc[len(fe.Loc)-1]
		}
		if field != "" {
			msg += field + ": " + fe.Msg
		} else {
			msg += fe.Msg
		}
	}
	return msg
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Detail: []FieldError{{Loc: []string{"body", field}, Msg: msg}}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Detail = append(e.Detail, FieldError{Loc: []string{"body", field}, Msg: msg})
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
