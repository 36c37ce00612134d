package smartenum

import (
	"errors"
	"fmt"
)

var (
	ErrBadConfig      = errors.New("bad config")
	ErrDuplicate      = errors.New("duplicate")
	ErrNotExist       = errors.New("not exist")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
)

// A DuplicateValueError is returned when a member is registered
// with a value another member of the same family already holds.
type DuplicateValueError struct {
	Family string
	Value  int
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("%s: %s already has a member with value %d", ErrDuplicate, e.Family, e.Value)
}

func (*DuplicateValueError) Unwrap() error { return ErrDuplicate }

// An UnsupportedFormatError is returned when rendering a member with a Preset
// that is not one of TextValue, TextCode or CodeTextValue.
type UnsupportedFormatError struct {
	Preset Preset
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: format preset %q", ErrNotImplemented, string(e.Preset))
}

func (*UnsupportedFormatError) Unwrap() error { return ErrNotImplemented }
