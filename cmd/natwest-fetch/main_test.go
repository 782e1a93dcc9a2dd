package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"env-file", "proxy", "transactions", "timeout", "verbose"} {
		require.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	require.Equal(t, "5", cmd.Flags().Lookup("transactions").DefValue)
}

func TestRootCommand_FailsWithoutCredentials(t *testing.T) {
	t.Setenv("NATWEST_CLIENT_ID", "")
	t.Setenv("NATWEST_CLIENT_SECRET", "")
	t.Setenv("NATWEST_REDIRECT_URI", "")
	t.Setenv("NATWEST_TEST_USERNAME", "")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--env-file", "does-not-exist.env"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing credentials")
}
