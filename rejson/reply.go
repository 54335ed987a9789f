package rejson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"rejson/rejson/errors"
)

const (
	okReply            = "OK"
	queuedReply        = "QUEUED"
	pongReply          = "PONG"
	errorReplySentinel = "-ERR"
)

// ValueKind names the JSON kind stored at a path, as reported by JSON.TYPE.
type ValueKind string

const (
	KindNone   ValueKind = "none"
	KindBool   ValueKind = "bool"
	KindInt    ValueKind = "int"
	KindFloat  ValueKind = "float"
	KindString ValueKind = "string"
	KindObject ValueKind = "object"
	KindArray  ValueKind = "array"
)

// Rejects replies carrying the server error sentinel, keeping the text
// after the fixed "-ERR " prefix as the error message.
func assertNotError(reply string) error {
	if !strings.HasPrefix(reply, errorReplySentinel) {
		return nil
	}

	// The message sits after the fixed 5-byte "-ERR " prefix; a bare
	// sentinel carries no message at all
	message := ""
	if len(reply) > len(errorReplySentinel)+1 {
		message = reply[len(errorReplySentinel)+1:]
	}

	return fmt.Errorf("%w: %s", errors.ErrorServerReply, message)
}

func assertStatusOK(status string) error {
	if err := assertNotError(status); err != nil {
		return err
	}

	if status != okReply {
		return fmt.Errorf("%w: expected OK, got %q", errors.ErrorUnexpectedReply, status)
	}
	return nil
}

// Decodes the bulk reply of a GET into a native value. A nil bulk means
// the key or path is absent and decodes to nil rather than failing.
func decodeDocument(bulk string) (any, error) {
	if err := assertNotError(bulk); err != nil {
		return nil, err
	}

	if bulk == "" {
		return nil, nil
	}

	var document any
	if err := json.Unmarshal([]byte(bulk), &document); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrorDecode, err)
	}
	return document, nil
}

// Maps a kind string reported by JSON.TYPE to its ValueKind. The mapping
// is closed: anything outside the seven known kinds is an unexpected reply.
func decodeKind(reply string) (ValueKind, error) {
	if err := assertNotError(reply); err != nil {
		return "", err
	}

	switch reply {
	case "null":
		return KindNone, nil
	case "boolean":
		return KindBool, nil
	case "integer":
		return KindInt, nil
	case "number":
		return KindFloat, nil
	case "string":
		return KindString, nil
	case "object":
		return KindObject, nil
	case "array":
		return KindArray, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", errors.ErrorUnexpectedReply, reply)
	}
}

// Checks the EXEC reply of the set-with-expiry transaction: exactly two
// results, the SET status byte-equivalent to OK and the EXPIRE count equal
// to 1 (an EXPIRE on a missing key reports 0).
func verifyExpiryResults(results []any) error {
	if len(results) != 2 {
		return fmt.Errorf("%w: expected 2 transaction results, got %d", errors.ErrorTransaction, len(results))
	}

	switch status := results[0].(type) {
	case []byte:
		if !bytes.Equal(status, []byte(okReply)) {
			return fmt.Errorf("%w: %s", errors.ErrorSetFailed, status)
		}
	case string:
		if status != okReply {
			return fmt.Errorf("%w: %s", errors.ErrorSetFailed, status)
		}
	default:
		return fmt.Errorf("%w: %v", errors.ErrorSetFailed, results[0])
	}

	if applied, ok := results[1].(int64); !ok || applied != 1 {
		return fmt.Errorf("%w: %v", errors.ErrorExpireFailed, results[1])
	}

	return nil
}
