package rejson

import (
	"fmt"

	"rejson/rejson/errors"
)

// Path addresses a node inside a stored JSON document, using the
// dotted/bracketed path syntax understood by the server module.
type Path struct {
	strPath string
}

func NewPath(searchPath string) Path {
	return Path{strPath: searchPath}
}

// RootPath addresses the whole document.
func RootPath() Path {
	return Path{strPath: "."}
}

func (path Path) String() string {
	return path.strPath
}

// Resolves a variadic optional-path slot: zero paths default to root,
// exactly one is taken as-is, anything more is ambiguous addressing.
func singleOptionalPath(paths ...Path) (Path, error) {
	switch len(paths) {
	case 0:
		return RootPath(), nil
	case 1:
		return paths[0], nil
	default:
		return Path{}, fmt.Errorf("%w: got %d paths", errors.ErrorInvalidArgument, len(paths))
	}
}
