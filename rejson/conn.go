package rejson

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"rejson/rejson/errors"
)

// Conn is the protocol surface this client needs from the underlying
// key-value connection: send one command, read one typed reply.
// Framing, dialing and reconnection belong to the implementation.
type Conn interface {
	SendCommand(name CommandName, args ...[]byte) error
	StatusReply() (string, error)
	BulkReply() (string, error)
	IntegerReply() (int64, error)
	MultiReply() ([]any, error)
	Close() error
}

type redisConn struct {
	conn redis.Conn
}

// NewConn wraps an established redigo connection.
func NewConn(conn redis.Conn) Conn {
	return &redisConn{conn: conn}
}

// Dial opens a TCP connection to the document store with the supplied
// timeouts and wraps it for use by the client.
func Dial(address string, dialTimeout, readTimeout, writeTimeout time.Duration) (Conn, error) {
	conn, err := redis.Dial(
		"tcp",
		address,
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial document store: %w", err)
	}

	return NewConn(conn), nil
}

func (connection *redisConn) SendCommand(name CommandName, args ...[]byte) error {
	commandArgs := make([]any, len(args))
	for index, arg := range args {
		commandArgs[index] = arg
	}

	if err := connection.conn.Send(string(name), commandArgs...); err != nil {
		return err
	}
	return connection.conn.Flush()
}

// Reads one raw reply, translating server error replies into the client's
// error kind. redigo strips the leading '-' type byte, leaving "ERR ...".
func (connection *redisConn) receive() (any, error) {
	reply, err := connection.conn.Receive()
	if err != nil {
		if serverError, ok := err.(redis.Error); ok {
			message := strings.TrimPrefix(string(serverError), "ERR ")
			return nil, fmt.Errorf("%w: %s", errors.ErrorServerReply, message)
		}
		return nil, err
	}
	return reply, nil
}

func (connection *redisConn) StatusReply() (string, error) {
	return redis.String(connection.receive())
}

func (connection *redisConn) BulkReply() (string, error) {
	reply, err := connection.receive()
	if err != nil {
		return "", err
	}

	// A nil bulk reply means the key or path is absent
	if reply == nil {
		return "", nil
	}
	return redis.String(reply, nil)
}

func (connection *redisConn) IntegerReply() (int64, error) {
	return redis.Int64(connection.receive())
}

func (connection *redisConn) MultiReply() ([]any, error) {
	return redis.Values(connection.receive())
}

func (connection *redisConn) Close() error {
	return connection.conn.Close()
}
