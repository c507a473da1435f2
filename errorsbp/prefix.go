package errorsbp

// PrefixError returns an error with message "prefix: err.Error()" that
// unwraps to err.
//
// A nil err gives nil, an empty prefix returns err unchanged.
// Unlike fmt.Errorf(prefix+": %w", err) the prefix is never treated as a
// format string.
func PrefixError(prefix string, err error) error {
	if err == nil {
		return nil
	}
	if prefix == "" {
		return err
	}
	return &PrefixedError{
		prefix: prefix,
		err:    err,
	}
}

// PrefixedError is the type of errors returned by PrefixError.
type PrefixedError struct {
	prefix string
	err    error
}

func (e *PrefixedError) Error() string {
	return e.prefix + ": " + e.err.Error()
}

func (e *PrefixedError) Unwrap() error {
	return e.err
}

// Prefix returns the prefix of this error.
func (e *PrefixedError) Prefix() string {
	return e.prefix
}
