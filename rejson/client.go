package rejson

import (
	"fmt"

	"rejson/rejson/errors"
)

// Client issues JSON document commands over a single connection. Each call
// performs one request/reply round trip (or one fixed transaction) and
// blocks until the reply is read; the connection must not be shared across
// goroutines without external synchronization.
type Client struct {
	conn Conn
}

func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

func (client *Client) Close() error {
	return client.conn.Close()
}

// Get retrieves the document stored at key, optionally narrowed to one or
// more paths. With no path the server defaults to the document root.
func (client *Client) Get(key string, paths ...Path) (any, error) {
	if err := client.conn.SendCommand(GET, buildGetArgs(key, paths...)...); err != nil {
		return nil, err
	}

	bulk, err := client.conn.BulkReply()
	if err != nil {
		return nil, err
	}

	return decodeDocument(bulk)
}

// Set stores a document at key under an optional single path, without
// caring whether the target path already exists.
func (client *Client) Set(key string, document any, paths ...Path) error {
	return client.SetWithModifier(key, document, Default, paths...)
}

// SetWithModifier stores a document at key under an optional single path,
// conditioned on the given existence modifier.
func (client *Client) SetWithModifier(key string, document any, flag ExistenceModifier, paths ...Path) error {
	args, err := buildSetArgs(key, document, flag, paths...)
	if err != nil {
		return err
	}

	if err := client.conn.SendCommand(SET, args...); err != nil {
		return err
	}

	status, err := client.conn.StatusReply()
	if err != nil {
		return err
	}

	return assertStatusOK(status)
}

// SetWithExpiry stores a document and applies a TTL in one server-side
// transaction: MULTI, JSON.SET, EXPIRE, EXEC. Every queued command must
// acknowledge with QUEUED and the commit must return exactly the SET
// status and the EXPIRE count; the first deviation aborts the call and no
// rollback is attempted.
func (client *Client) SetWithExpiry(key string, document any, flag ExistenceModifier, expirySeconds int64, paths ...Path) error {
	args, err := buildSetArgs(key, document, flag, paths...)
	if err != nil {
		return err
	}

	// Begin
	if err := client.conn.SendCommand(MULTI); err != nil {
		return err
	}
	status, err := client.conn.StatusReply()
	if err != nil {
		return err
	}
	if status != okReply {
		return fmt.Errorf("%w: MULTI replied %q", errors.ErrorTransaction, status)
	}

	// Queue the SET
	if err := client.conn.SendCommand(SET, args...); err != nil {
		return err
	}
	if err := client.expectQueued(SET); err != nil {
		return err
	}

	// Queue the EXPIRE
	if err := client.conn.SendCommand(EXPIRE, buildExpireArgs(key, expirySeconds)...); err != nil {
		return err
	}
	if err := client.expectQueued(EXPIRE); err != nil {
		return err
	}

	// Commit and verify both results
	if err := client.conn.SendCommand(EXEC); err != nil {
		return err
	}
	results, err := client.conn.MultiReply()
	if err != nil {
		return err
	}

	return verifyExpiryResults(results)
}

func (client *Client) expectQueued(command CommandName) error {
	status, err := client.conn.StatusReply()
	if err != nil {
		return err
	}

	if status != queuedReply {
		return fmt.Errorf("%w: %s replied %q instead of QUEUED", errors.ErrorTransaction, command, status)
	}
	return nil
}

// Ping probes the connection; the server must answer with status PONG.
func (client *Client) Ping() error {
	if err := client.conn.SendCommand(PING); err != nil {
		return err
	}

	status, err := client.conn.StatusReply()
	if err != nil {
		return err
	}
	if err := assertNotError(status); err != nil {
		return err
	}

	if status != pongReply {
		return fmt.Errorf("%w: expected PONG, got %q", errors.ErrorUnexpectedReply, status)
	}
	return nil
}

// Del deletes the document or sub-document at key and returns the number
// of paths deleted (0 when the key or path is absent, 1 otherwise).
func (client *Client) Del(key string, paths ...Path) (int64, error) {
	args, err := buildDelArgs(key, paths...)
	if err != nil {
		return 0, err
	}

	if err := client.conn.SendCommand(DEL, args...); err != nil {
		return 0, err
	}

	return client.conn.IntegerReply()
}

// Type reports the JSON kind stored at key under an optional single path.
func (client *Client) Type(key string, paths ...Path) (ValueKind, error) {
	args, err := buildTypeArgs(key, paths...)
	if err != nil {
		return "", err
	}

	if err := client.conn.SendCommand(TYPE, args...); err != nil {
		return "", err
	}

	bulk, err := client.conn.BulkReply()
	if err != nil {
		return "", err
	}

	return decodeKind(bulk)
}
