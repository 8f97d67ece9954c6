package tools

import "errors"

var (
	// ErrUnknownTool is returned by Call when no tool is registered under the requested name.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrDuplicateTool is returned by Register when the name is already taken.
	ErrDuplicateTool = errors.New("tool already registered")
	// ErrEmptyToolName is returned by Register for a tool without a name.
	ErrEmptyToolName = errors.New("tool name cannot be empty")
	// ErrNilHandler is returned by Register for a tool without a handler.
	ErrNilHandler = errors.New("tool handler cannot be nil")
	// ErrInvalidArguments wraps argument decoding failures inside tool handlers.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)
