package grade

// ValidationError reports structurally unusable course data: empty or
// mismatched sequences, zero total credits, or a calculator queried
// before any data was loaded.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// TypeMismatchError reports arguments of the wrong shape, such as a nil
// sequence passed where course data was expected.
type TypeMismatchError struct {
	Msg string
}

func (e *TypeMismatchError) Error() string {
	return e.Msg
}
