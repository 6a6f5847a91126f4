package errors

// Unit is an error type that carries no information. Parsers using it only
// learn that a step failed, which keeps hot paths allocation free.
type Unit[I any] struct{}

func (Unit[I]) FromErrorKind(I, Kind) Unit[I]         { return Unit[I]{} }
func (Unit[I]) Append(I, Kind, Unit[I]) Unit[I]       { return Unit[I]{} }
func (Unit[I]) FromChar(I, rune) Unit[I]              { return Unit[I]{} }
func (Unit[I]) Or(Unit[I]) Unit[I]                    { return Unit[I]{} }
func (Unit[I]) AddContext(I, string, Unit[I]) Unit[I] { return Unit[I]{} }
func (Unit[I]) FromExternalError(I, Kind, error) Unit[I] {
	return Unit[I]{}
}

func (Unit[I]) Error() string { return "parse error" }
