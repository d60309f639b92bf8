package trigger

import (
	"encoding/json"
	"fmt"
)

// CommandName identifies an external form command.
type CommandName string

const (
	CommandOpenForm  CommandName = "openForm"
	CommandCloseForm CommandName = "closeForm"
)

// Command is a two-element instruction for the external form service.
type Command struct {
	Name   CommandName
	FormID string
}

// CommandSink accepts commands for asynchronous delivery. Append must not block.
type CommandSink interface {
	Append(command Command)
}

// MarshalJSON encodes the command as ["name", "formID"].
func (command Command) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{string(command.Name), command.FormID})
}

func (command Command) String() string {
	return fmt.Sprintf("%s(%s)", command.Name, command.FormID)
}
