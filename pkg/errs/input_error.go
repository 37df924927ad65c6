package errs

// InputError marks errors caused by malformed caller input, as opposed to I/O
// or environment failures.
type InputError interface {
	InputError()
}

type InputErrorImpl struct {
}

func (InputErrorImpl) InputError() {
}

func IsInputError(err error) bool {
	var ie InputError
	return As(err, &ie)
}
