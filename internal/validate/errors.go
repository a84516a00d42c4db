package validate

import "errors"

var (
	ErrStructure = errors.New("validate: malformed grid")
	ErrConflict  = errors.New("validate: conflicting grid")
)
