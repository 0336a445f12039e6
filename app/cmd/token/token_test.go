package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ribgsilva/wp-notes-api/platform/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Command(zap.NewNop().Sugar())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIssue(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "cli-secret")

	out, err := run(t, "issue", "--user", "9", "--role", "editor")
	require.NoError(t, err)

	user, err := auth.NewTokenManager(auth.TokenConfig{SecretKey: "cli-secret"}).Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, auth.User{ID: 9, Roles: []string{"editor"}}, user)
}

func TestIssueRejectsBadInput(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "cli-secret")

	_, err := run(t, "issue")
	assert.Error(t, err)

	_, err = run(t, "issue", "--user", "9", "--role", "overlord")
	assert.Error(t, err)

	t.Setenv("AUTH_SECRET_KEY", "")
	_, err = run(t, "issue", "--user", "9")
	assert.Error(t, err)
}
