package types

import (
	"errors"
	"fmt"
)

// MissingEnvError reports a required credential variable absent from the
// process environment. It is raised before any network activity.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing environment variable: %s", e.Name)
}

func IsMissingEnv(err error) bool {
	var target *MissingEnvError
	return errors.As(err, &target)
}

type FilteredError struct {
	FilterName string
	ItemID     string
	Reason     string
}

func (e *FilteredError) Error() string {
	return fmt.Sprintf("filtered by %s: %s (item: %s)", e.FilterName, e.Reason, e.ItemID)
}

func NewFilteredError(filterName, itemID, reason string) *FilteredError {
	return &FilteredError{
		FilterName: filterName,
		ItemID:     itemID,
		Reason:     reason,
	}
}

func IsFiltered(err error) bool {
	var target *FilteredError
	return errors.As(err, &target)
}
