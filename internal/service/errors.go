package service

import (
	"errors"
	"strings"

	"github.com/vansh9528/dealstash/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries field-level messages for a rejected create/edit.
// No partial writes happen when one is returned.
type ValidationError struct {
	Fields []models.ErrorDetail
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, models.ErrorDetail{Field: field, Code: code, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
