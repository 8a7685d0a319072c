package errorsbp

// PrefixError appends prefix to err.
//
// If err is nil, nil will be returned.
// If prefix is empty, err will be returned as-is.
// Otherwise the error message would be "prefix: err.Error()",
// and the original error is still reachable through errors.Is and errors.As.
//
// Unlike fmt.Errorf(prefix+": %w", err), prefix is never treated as a format
// string.
func PrefixError(prefix string, err error) error {
	if err == nil {
		return nil
	}
	if prefix == "" {
		return err
	}
	return &PrefixedError{
		prefix: prefix,
		msg:    prefix + ": " + err.Error(),
		err:    err,
	}
}

// PrefixedError defines the type of error returned by PrefixError.
type PrefixedError struct {
	prefix string
	msg    string
	err    error
}

func (e *PrefixedError) Error() string {
	return e.msg
}

func (e *PrefixedError) Unwrap() error {
	return e.err
}

// Prefix returns the prefix of this error.
func (e *PrefixedError) Prefix() string {
	return e.prefix
}
