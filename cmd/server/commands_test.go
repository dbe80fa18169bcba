package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests that change the environment do not run in parallel.

func TestMigrateCmd_RunsAgainstConfiguredDatabase(t *testing.T) {
	t.Setenv("WORKSHOP_DATABASE_URL", "sqlite://")
	t.Setenv("WORKSHOP_SERVER_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"migrate", "status"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "VERSION")
	assert.Contains(t, out.String(), "create_session_logs_table.sql")
}

func TestMigrateCmd_RejectsUnknownSubcommand(t *testing.T) {
	t.Setenv("WORKSHOP_DATABASE_URL", "sqlite://")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate", "sideways"})

	assert.Error(t, cmd.Execute())
}

func TestServeCmd_FailsOnInvalidConfig(t *testing.T) {
	t.Setenv("WORKSHOP_SERVER_LOG_LEVEL", "chatty")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestHashPasswordCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    []string
		wantErr bool
	}{
		{name: "from args", args: []string{"pw1", "тест123"}, want: []string{"pw1", "тест123"}},
		{name: "from stdin", stdin: "alpha\n\nbeta\r\n", want: []string{"alpha", "beta"}},
		{name: "nothing to hash", stdin: "", wantErr: true},
		{name: "too long", args: []string{strings.Repeat("p", 73)}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cmd := newHashPasswordCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetArgs(append([]string{"--cost", "4"}, tt.args...))

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Len(t, lines, len(tt.want))
			for i, password := range tt.want {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[i]), []byte(password)))
			}
		})
	}
}
