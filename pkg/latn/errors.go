package latn

import "errors"

// Sentinel errors naming the empty-input and no-match outcomes. No
// function in this package returns them: the ExecuteLayerN methods
// report both outcomes through Success=false.
// vocabulary.ErrUnknownToken and phrase.ErrMixedCoordinator are the
// lower-layer sentinels propagated as-is rather than re-wrapped here.
var (
	ErrEmptyInput = errors.New("latn: empty input")
	ErrATNNoMatch = errors.New("latn: no ATN network matched the input")
)
