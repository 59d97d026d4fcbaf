// Package ctl implements chirpyctl, a small operator tool for the chirpy
// server.
//
//	chirpyctl hash-password            prompt for a password, print its bcrypt hash
//	chirpyctl mint-token -u <user id>  print an access token for a user
//
// mint-token reads the secret and lifetime the same way the server does
// (-c file, .env, SECRET / ACCESS_TOKEN_TTL, -s / -t).
package ctl

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/flagx"
	"github.com/dmitrijs2005/chirpy/internal/server/auth"
	"github.com/dmitrijs2005/chirpy/internal/server/config"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// envFile is where mint-token looks for a .env file.
var envFile = ".env"

const usage = `usage: chirpyctl <command> [flags]

commands:
  hash-password   read a password without echo and print its bcrypt hash
  mint-token      print an access token (-u <user id>)
`

// Run executes one command and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "hash-password":
		err = hashPassword(stdout, stderr)
	case "mint-token":
		err = mintToken(args[1:], stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func hashPassword(stdout, prompt io.Writer) error {
	fmt.Fprint(prompt, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if len(pw) == 0 {
		return errors.New("empty password")
	}

	hash, err := auth.HashPassword(string(pw))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, hash)
	return nil
}

func mintToken(args []string, stdout io.Writer) error {
	var user string
	fs := flag.NewFlagSet("mint-token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&user, "u", "", "user id")
	fs.StringVar(&user, "user", "", "user id")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-u", "-user"})); err != nil {
		return err
	}

	id, err := uuid.Parse(user)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", user, err)
	}

	cfg, err := config.LoadConfig(args, envFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	token, err := auth.GenerateToken(id.String(), []byte(cfg.SecretKey), cfg.AccessTokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, token)
	return nil
}
