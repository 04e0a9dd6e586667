package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal seams, replaced in tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// credentials are the login flags shared by restricted commands.
type credentials struct {
	Email    string
	Password string
}

// password returns the --password value. When it is empty and in is a
// terminal, the password is read from in without echo. Otherwise the empty
// value is returned and left to login validation.
func (c *credentials) password(in io.Reader, prompt io.Writer) (string, error) {
	if c.Password != "" {
		return c.Password, nil
	}

	f, ok := in.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return "", nil
	}

	if _, err := fmt.Fprintf(prompt, "Password for %s: ", c.Email); err != nil {
		return "", err
	}
	pw, err := readPassword(int(f.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(pw), nil
}
