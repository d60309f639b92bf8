package cli

import (
	"strings"
	"testing"

	goflags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

func TestVersionFlag(t *testing.T) {
	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("1.2.3", []string{"--version"})
	})

	assert.NoError(t, err)
	assert.Equal(t, "promotimer 1.2.3", strings.TrimSpace(output))
}

func TestSubcommandsRegistered(t *testing.T) {
	parser, _, _ := buildParser("test")
	for _, name := range []string{"run", "status", "clear", "init"} {
		assert.NotNil(t, parser.Find(name), name)
	}
}

func TestRunFlagsParsed(t *testing.T) {
	parser, globals, cmds := buildParser("test")
	// Parse without executing: a nil CommandHandler would run the command.
	parser.CommandHandler = func(command goflags.Commander, args []string) error {
		return nil
	}
	_, err := parser.ParseArgs([]string{"--ephemeral", "--verbose", "run", "--terminal", "--chime"})

	assert.NoError(t, err)
	assert.True(t, globals.Ephemeral)
	assert.True(t, globals.Verbose)
	assert.True(t, cmds.Run.Terminal)
	assert.True(t, cmds.Run.Chime)
}

func TestUnknownSubcommand(t *testing.T) {
	err := RunWithArgs("test", []string{"bogus"})
	assert.Error(t, err)
}
