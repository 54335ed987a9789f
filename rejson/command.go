package rejson

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"rejson/rejson/errors"
)

// CommandName is a wire keyword understood by the document store.
type CommandName string

const (
	DEL  CommandName = "JSON.DEL"  // Delete a path, reply is the deleted count
	GET  CommandName = "JSON.GET"  // Retrieve one or more paths as JSON text
	SET  CommandName = "JSON.SET"  // Store a JSON document at a path
	TYPE CommandName = "JSON.TYPE" // Report the kind stored at a path

	MULTI  CommandName = "MULTI"  // Open a transaction
	EXEC   CommandName = "EXEC"   // Commit the queued transaction
	EXPIRE CommandName = "EXPIRE" // Apply a TTL in seconds to a key
	PING   CommandName = "PING"   // Probe the connection
)

// ExistenceModifier conditions a SET on the target path already existing
// or not; the zero value applies the write unconditionally.
type ExistenceModifier string

const (
	Default   ExistenceModifier = ""
	NotExists ExistenceModifier = "NX"
	MustExist ExistenceModifier = "XX"
)

func buildDelArgs(key string, paths ...Path) ([][]byte, error) {
	resolvedPath, err := singleOptionalPath(paths...)
	if err != nil {
		return nil, err
	}

	return [][]byte{[]byte(key), []byte(resolvedPath.String())}, nil
}

// GET takes any number of explicit paths and injects none when the caller
// supplies none: the server itself defaults to the document root.
func buildGetArgs(key string, paths ...Path) [][]byte {
	args := [][]byte{[]byte(key)}

	return append(args, lo.Map(paths, func(path Path, _ int) []byte {
		return []byte(path.String())
	})...)
}

func buildSetArgs(key string, document any, flag ExistenceModifier, paths ...Path) ([][]byte, error) {
	resolvedPath, err := singleOptionalPath(paths...)
	if err != nil {
		return nil, err
	}

	jsonDocument, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrorDecode, err)
	}

	args := [][]byte{[]byte(key), []byte(resolvedPath.String()), jsonDocument}
	if flag != Default {
		args = append(args, []byte(flag))
	}

	return args, nil
}

func buildTypeArgs(key string, paths ...Path) ([][]byte, error) {
	resolvedPath, err := singleOptionalPath(paths...)
	if err != nil {
		return nil, err
	}

	return [][]byte{[]byte(key), []byte(resolvedPath.String())}, nil
}

func buildExpireArgs(key string, seconds int64) [][]byte {
	return [][]byte{[]byte(key), []byte(strconv.FormatInt(seconds, 10))}
}
