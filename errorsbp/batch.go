package errorsbp

import (
	"errors"
	"strings"
)

var (
	_ error = Batch{}
	_ error = (*Batch)(nil)
)

// Batch is an error that can contain multiple errors.
//
// The zero value is an empty batch ready to use.
// It's not safe for concurrent use.
type Batch struct {
	errs []error
}

func (be Batch) Error() string {
	var sb strings.Builder
	sb.WriteString("errorsbp.Batch: ")
	for i, err := range be.errs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Len returns the number of errors in the batch.
func (be Batch) Len() int {
	return len(be.errs)
}

// Is reports whether any error in the batch matches target.
func (be Batch) Is(target error) bool {
	for _, err := range be.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As sets *v to the batch itself when v points to a Batch,
// otherwise to the first error in the batch that errors.As matches.
func (be Batch) As(v interface{}) bool {
	if target, ok := v.(*Batch); ok {
		*target = be
		return true
	}
	for _, err := range be.errs {
		if errors.As(err, v) {
			return true
		}
	}
	return false
}

// Add adds errors into the batch.
//
// Nil errors are skipped.
// Adding a Batch adds its errors instead of the Batch itself.
// Errors wrapping a Batch are added unchanged, the wrapper is kept.
func (be *Batch) Add(errs ...error) {
	be.AddPrefix("", errs...)
}

// AddPrefix is Add with every added error passed through PrefixError.
func (be *Batch) AddPrefix(prefix string, errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		switch batch := err.(type) {
		case Batch:
			be.addBatch(prefix, batch)
		case *Batch:
			if batch != nil {
				be.addBatch(prefix, *batch)
			}
		default:
			be.errs = append(be.errs, PrefixError(prefix, err))
		}
	}
}

func (be *Batch) addBatch(prefix string, batch Batch) {
	for _, err := range batch.errs {
		be.errs = append(be.errs, PrefixError(prefix, err))
	}
}

// Compile returns nil for an empty batch,
// the only error for a batch of one,
// and the batch itself otherwise.
func (be Batch) Compile() error {
	switch len(be.errs) {
	case 0:
		return nil
	case 1:
		return be.errs[0]
	default:
		return be
	}
}

// Errors returns a copy of the errors in the batch.
func (be Batch) Errors() []error {
	errs := make([]error, len(be.errs))
	copy(errs, be.errs)
	return errs
}
