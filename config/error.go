package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
	"github.com/ARM-software/golang-batchqueue/reflection"
)

// IValidationError describes an invalid configuration entry: where it sits in the configuration structure and
// which environment variable sets it.
type IValidationError interface {
	error
	// GetTreePath returns the path to the entry in the structure e.g. `Batching->MinBatchSize`.
	GetTreePath() string
	// GetMapStructurePath returns the environment variable setting the entry e.g. `PREFIX_BATCHING_MIN_BATCH_SIZE`.
	GetMapStructurePath() string
	GetReason() string
	// Unwrap always returns commonerrors.ErrInvalid.
	Unwrap() error
}

// WrapFieldValidationError records that err was raised while validating the field fieldName. mapStructure is
// the key the field is loaded from, if any. A non-nil prefix sets the environment variable prefix.
func WrapFieldValidationError(fieldName string, mapStructure, prefix *string, err error) IValidationError {
	vErr := toValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.nest(fieldName, mapStructure)
	if prefix != nil {
		vErr.setPrefix(*prefix)
	}
	return vErr
}

// WrapValidationError converts the error returned when validating a structure into an IValidationError.
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := toValidationError(err)
	if vErr == nil {
		return nil
	}
	if !reflection.IsEmpty(prefix) {
		vErr.setPrefix(*prefix)
	}
	return vErr
}

type pathElement struct {
	name string
	// key is nil when the field is not loaded from the environment.
	key *string
}

type validationError struct {
	// path is ordered from the outermost field.
	path   []pathElement
	prefix string
	reason string
}

func (v *validationError) nest(fieldName string, key *string) {
	e := pathElement{name: strings.TrimSpace(fieldName)}
	if key != nil {
		k := strings.TrimSpace(*key)
		e.key = &k
	}
	v.path = slices.Insert(v.path, 0, e)
}

func (v *validationError) setPrefix(prefix string) {
	v.prefix = strings.TrimSpace(prefix)
}

func (v *validationError) GetTreePath() string {
	names := make([]string, 0, len(v.path))
	for i := range v.path {
		names = append(names, v.path[i].name)
	}
	return strings.Join(names, "->")
}

func (v *validationError) GetMapStructurePath() string {
	keys := make([]string, 0, len(v.path)+1)
	for i := range v.path {
		if v.path[i].key != nil {
			keys = append(keys, *v.path[i].key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	if v.prefix != "" {
		keys = slices.Insert(keys, 0, v.prefix)
	}
	return strings.ToUpper(strings.ReplaceAll(strings.Join(keys, "_"), "-", "_"))
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) Error() string {
	var b strings.Builder
	b.WriteString("structure failed validation:")
	if tree := v.GetTreePath(); tree != "" {
		_, _ = fmt.Fprintf(&b, " (%v)", tree)
	}
	if env := v.GetMapStructurePath(); env != "" {
		_, _ = fmt.Fprintf(&b, " [%v]", env)
	}
	if v.reason != "" {
		b.WriteString(" ")
		b.WriteString(v.reason)
	}
	return commonerrors.New(v.Unwrap(), b.String()).Error()
}

func toValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return fromOzzoErrors(fieldErrs)
	}
	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		vErr = &validationError{reason: ruleErr.Message()}
		if params := slices.Sorted(maps.Keys(ruleErr.Params())); len(params) > 0 {
			vErr.nest(params[0], nil)
		}
		return vErr
	}
	return &validationError{reason: err.Error()}
}

// fromOzzoErrors only keeps the first invalid field in alphabetical order. Keys are mapstructure tags as
// validation.ErrorTag is set accordingly.
func fromOzzoErrors(errs validation.Errors) *validationError {
	if len(errs) == 0 {
		return &validationError{reason: errs.Error()}
	}
	key := slices.Min(slices.Collect(maps.Keys(errs)))
	var vErr *validationError
	var nested validation.Errors
	switch err := errs[key]; {
	case errors.As(err, &vErr):
	case errors.As(err, &nested):
		vErr = fromOzzoErrors(nested)
	default:
		vErr = &validationError{reason: fmt.Sprint(err)}
	}
	vErr.nest(key, &key)
	return vErr
}
