package ctl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chirpy/internal/server/auth"
)

func stubPassword(t *testing.T, pw string, err error) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), err }
	t.Cleanup(func() { readPassword = orig })
}

func noEnvFile(t *testing.T) {
	t.Helper()
	orig := envFile
	envFile = ""
	t.Cleanup(func() { envFile = orig })
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, Run(nil, &out, &errOut))
	assert.Contains(t, errOut.String(), "usage: chirpyctl")

	errOut.Reset()
	assert.Equal(t, 2, Run([]string{"bogus"}, &out, &errOut))
	assert.Contains(t, errOut.String(), `unknown command "bogus"`)

	assert.Equal(t, 0, Run([]string{"help"}, &out, &errOut))
}

func TestHashPassword(t *testing.T) {
	stubPassword(t, "s3cret", nil)

	var out, errOut bytes.Buffer
	require.Equal(t, 0, Run([]string{"hash-password"}, &out, &errOut), errOut.String())

	hash := strings.TrimSpace(out.String())
	assert.True(t, auth.CheckPasswordHash("s3cret", hash))
	assert.Contains(t, errOut.String(), "Enter password: ")
}

func TestHashPassword_Errors(t *testing.T) {
	stubPassword(t, "", nil)
	var out, errOut bytes.Buffer
	assert.Equal(t, 1, Run([]string{"hash-password"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "empty password")

	stubPassword(t, "", errors.New("not a terminal"))
	errOut.Reset()
	assert.Equal(t, 1, Run([]string{"hash-password"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "not a terminal")
	assert.Empty(t, out.String())
}

func TestMintToken(t *testing.T) {
	noEnvFile(t)
	t.Setenv("SECRET", "")
	id := uuid.New()

	var out, errOut bytes.Buffer
	code := Run([]string{"mint-token", "-u", id.String(), "-s", "cli-secret", "-t", "120"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	sub, err := auth.GetUserIDFromToken(strings.TrimSpace(out.String()), []byte("cli-secret"))
	require.NoError(t, err)
	assert.Equal(t, id.String(), sub)
}

func TestMintToken_SecretFromEnv(t *testing.T) {
	noEnvFile(t)
	t.Setenv("SECRET", "env-secret")
	t.Setenv("ACCESS_TOKEN_TTL", (30 * time.Second).String())

	var out, errOut bytes.Buffer
	require.Equal(t, 0, Run([]string{"mint-token", "-user", uuid.NewString()}, &out, &errOut), errOut.String())

	_, err := auth.GetUserIDFromToken(strings.TrimSpace(out.String()), []byte("env-secret"))
	assert.NoError(t, err)
}

func TestMintToken_Errors(t *testing.T) {
	noEnvFile(t)
	t.Setenv("SECRET", "")

	var out, errOut bytes.Buffer
	assert.Equal(t, 1, Run([]string{"mint-token", "-u", "walt"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "invalid user id")

	errOut.Reset()
	assert.Equal(t, 1, Run([]string{"mint-token", "-u", uuid.NewString()}, &out, &errOut))
	assert.Contains(t, errOut.String(), "secret key is required")
}
