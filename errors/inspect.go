package errors

import stderrors "errors"

// kinded is implemented by error types that carry a Kind.
type kinded interface {
	ErrorKind() Kind
}

// KindOf returns the kind of the first error in err's chain that carries
// one. Chains built with fmt.Errorf("%w") are traversed.
//
// Example:
//
//	if kind, ok := errors.KindOf(err); ok {
//	    log.Printf("parser %s failed (code %d)", kind, kind.Code())
//	}
func KindOf(err error) (Kind, bool) {
	var k kinded
	if stderrors.As(err, &k) {
		if kind := k.ErrorKind(); kind.Valid() {
			return kind, true
		}
	}
	return 0, false
}

// HasKind reports whether err carries the given kind.
func HasKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// CodeOf returns the stable numeric code of err's kind, or 0.
func CodeOf(err error) uint32 {
	k, _ := KindOf(err)
	return k.Code()
}
