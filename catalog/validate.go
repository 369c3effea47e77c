package catalog

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord indicates a lodge or connection record with a bad field.
var ErrInvalidRecord = errors.New("catalog: invalid record")

// recordValidate checks Lodge and Link struct tags. The custom "hms" tag
// accepts trail durations written as H:MM:SS.
var recordValidate *validator.Validate

var hmsPattern = regexp.MustCompile(`^\d{1,3}:[0-5]\d:[0-5]\d$`)

func init() {
	recordValidate = validator.New()
	_ = recordValidate.RegisterValidation("hms", validateHMS)
}

func validateHMS(fl validator.FieldLevel) bool {
	return hmsPattern.MatchString(fl.Field().String())
}

// Validate checks the lodge's fields: a positive id, a name, and
// non-negative altitude and capacity.
func (l Lodge) Validate() error {
	if err := recordValidate.Struct(l); err != nil {
		return fmt.Errorf("%w: lodge %d: %v", ErrInvalidRecord, l.ID, err)
	}

	return nil
}

// Validate checks the link's fields: positive ids and year, a non-negative
// distance, and an H:MM:SS duration when one is given.
func (l Link) Validate() error {
	if err := recordValidate.Struct(l); err != nil {
		return fmt.Errorf("%w: connection %d: %v", ErrInvalidRecord, l.ID, err)
	}

	return nil
}
