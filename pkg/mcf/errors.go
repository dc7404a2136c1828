package mcf

import "fmt"

// FormatError reports input that cannot be recognized as a
// MovieContentFilter document. The parser only returns it for a missing
// or unrecognizable header line; every other anomaly is skipped so that
// imperfect community-contributed files still load.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("mcf: %s", e.Msg)
}
