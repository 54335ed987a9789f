package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/samber/lo"

	"rejson/envs"
	"rejson/pkg/utils"
	"rejson/rejson"
)

type ClientResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   error  `json:"error,omitempty"`
}

func NewSuccessResponse(message string) ClientResponse {
	return ClientResponse{
		Success: true,
		Message: message,
		Error:   nil,
	}
}

func NewErrorResponse(err error) ClientResponse {
	return ClientResponse{
		Success: false,
		Message: fmt.Sprintf("Error: %v", err),
		Error:   err,
	}
}

func NewUsageErrorResponse(usage string) ClientResponse {
	return ClientResponse{
		Success: false,
		Message: usage,
		Error:   fmt.Errorf("invalid usage"),
	}
}

func (response ClientResponse) ToString() string {
	return response.Message + "\n"
}

const (
	GET_COMMAND   = "GET"   // Retrieve a document or sub-document
	SET_COMMAND   = "SET"   // Store a document at a path
	SETNX_COMMAND = "SETNX" // Store only when the path does not exist
	SETXX_COMMAND = "SETXX" // Store only when the path already exists
	SETEX_COMMAND = "SETEX" // Store a document and apply an expiry
	DEL_COMMAND   = "DEL"   // Delete a document or sub-document
	TYPE_COMMAND  = "TYPE"  // Report the kind stored at a path
	PING_COMMAND  = "PING"  // Probe the connection
	QUIT_COMMAND  = "QUIT"  // Leave the prompt
)

func writeResponse(response ClientResponse) {
	fmt.Print(response.ToString())
}

func parsePaths(arguments []string) []rejson.Path {
	return lo.Map(arguments, func(rawPath string, _ int) rejson.Path {
		return rejson.NewPath(rawPath)
	})
}

func parseDocument(rawDocument string) (any, error) {
	var document any
	if err := json.Unmarshal([]byte(rawDocument), &document); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %v", err)
	}
	return document, nil
}

func handleGetCommand(arguments []string, client *rejson.Client) ClientResponse {
	if len(arguments) < 2 {
		return NewUsageErrorResponse("Usage: GET {key} [path ...]")
	}

	document, err := client.Get(arguments[1], parsePaths(arguments[2:])...)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to get document: %v", err))
	}
	return NewSuccessResponse(utils.ToPrettyJSON(document))
}

func handleSetCommand(arguments []string, client *rejson.Client, flag rejson.ExistenceModifier) ClientResponse {
	numberOfArguments := len(arguments)
	if numberOfArguments < 3 || numberOfArguments > 4 {
		return NewUsageErrorResponse(fmt.Sprintf("Usage: %s {key} {json} [path]", arguments[0]))
	}

	document, err := parseDocument(arguments[2])
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := client.SetWithModifier(arguments[1], document, flag, parsePaths(arguments[3:])...); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to set document: %v", err))
	}
	return NewSuccessResponse("OK")
}

func handleSetexCommand(arguments []string, client *rejson.Client, config envs.Envs) ClientResponse {
	numberOfArguments := len(arguments)
	if numberOfArguments < 3 || numberOfArguments > 4 {
		return NewUsageErrorResponse("Usage: SETEX {key} {json} [ttl]")
	}

	var ttl int64
	if numberOfArguments == 4 {
		var err error
		if ttl, err = utils.FromStringToInt64(arguments[3]); err != nil {
			return NewErrorResponse(fmt.Errorf("invalid TTL value: %v", err))
		}
	} else {
		ttl = config.DefaultTTL
	}

	if ttl <= 0 {
		return NewErrorResponse(fmt.Errorf("a positive TTL is required, got %d", ttl))
	}

	document, err := parseDocument(arguments[2])
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := client.SetWithExpiry(arguments[1], document, rejson.Default, ttl); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to set document with expiry: %v", err))
	}
	return NewSuccessResponse("OK")
}

func handleDelCommand(arguments []string, client *rejson.Client) ClientResponse {
	if len(arguments) < 2 || len(arguments) > 3 {
		return NewUsageErrorResponse("Usage: DEL {key} [path]")
	}

	deletedCount, err := client.Del(arguments[1], parsePaths(arguments[2:])...)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to delete document: %v", err))
	}
	return NewSuccessResponse(fmt.Sprintf("%d", deletedCount))
}

func handleTypeCommand(arguments []string, client *rejson.Client) ClientResponse {
	if len(arguments) < 2 || len(arguments) > 3 {
		return NewUsageErrorResponse("Usage: TYPE {key} [path]")
	}

	kind, err := client.Type(arguments[1], parsePaths(arguments[2:])...)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to get document type: %v", err))
	}
	return NewSuccessResponse(string(kind))
}

func handlePingCommand(client *rejson.Client) ClientResponse {
	if err := client.Ping(); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to ping document store: %v", err))
	}
	return NewSuccessResponse("PONG")
}

func HandleCommand(arguments []string, client *rejson.Client, config envs.Envs) ClientResponse {
	if len(arguments) == 0 {
		return NewUsageErrorResponse("Invalid command!")
	}

	requestedCommand := strings.ToUpper(arguments[0])

	switch requestedCommand {
	case GET_COMMAND:
		return handleGetCommand(arguments, client)
	case SET_COMMAND:
		return handleSetCommand(arguments, client, rejson.Default)
	case SETNX_COMMAND:
		return handleSetCommand(arguments, client, rejson.NotExists)
	case SETXX_COMMAND:
		return handleSetCommand(arguments, client, rejson.MustExist)
	case SETEX_COMMAND:
		return handleSetexCommand(arguments, client, config)
	case DEL_COMMAND:
		return handleDelCommand(arguments, client)
	case TYPE_COMMAND:
		return handleTypeCommand(arguments, client)
	case PING_COMMAND:
		return handlePingCommand(client)
	default:
		return NewErrorResponse(fmt.Errorf("unknown command '%v'", arguments[0]))
	}
}

func main() {
	envs.LoadEnv()
	config := envs.Gets()
	address := net.JoinHostPort(config.RejsonHost, config.RejsonPort)

	conn, err := rejson.Dial(address, config.DialTimeout, config.ReadTimeout, config.WriteTimeout)
	if err != nil {
		writeResponse(NewErrorResponse(fmt.Errorf("failed to connect to %s: %v", address, err)))
		os.Exit(1)
	}

	client := rejson.NewClient(conn)
	defer client.Close()

	writeResponse(NewSuccessResponse(fmt.Sprintf("Connected to document store at %s", address)))

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("rejson> ")

	for scanner.Scan() {
		rawCommand := strings.TrimSpace(scanner.Text())
		cookedCommand := strings.Fields(rawCommand)

		if len(cookedCommand) > 0 && strings.ToUpper(cookedCommand[0]) == QUIT_COMMAND {
			break
		}

		if len(cookedCommand) > 0 {
			writeResponse(HandleCommand(cookedCommand, client, config))
		}

		fmt.Print("rejson> ")
	}
}
