package dispatch

import "fmt"

// UnknownGenericError reports a registration or call against a generic
// that was never declared.
type UnknownGenericError struct {
	Name string
}

func (e *UnknownGenericError) Error() string {
	return fmt.Sprintf("unknown generic %q: declare it before registering or dispatching", e.Name)
}

// NoApplicableMethodError reports a dispatch that found neither a
// method for the tag nor a default implementation.
type NoApplicableMethodError struct {
	Generic string
	Tag     string
}

func (e *NoApplicableMethodError) Error() string {
	return fmt.Sprintf("no applicable method for %q applied to tag %q", e.Generic, e.Tag)
}
