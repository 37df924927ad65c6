package errs

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

type IExtend interface {
	Extend(message string) error
}

// Extend prefixes err with message. Errors of this package keep their kind,
// any other error is wrapped with a stack trace.
func Extend(err error, message string) error {
	if ex, ok := err.(IExtend); ok {
		return ex.Extend(message)
	}
	return errors.Wrap(err, message)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func fmtExtend(self error, message string) string {
	return fmt.Sprintf("%s: %s", message, self)
}
