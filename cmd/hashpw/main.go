// Command hashpw reads a password from the terminal without echo and prints
// the salt and hash PassLocker stores for it. Operators use it to seed
// accounts directly in the database.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/passlocker/internal/common"
	"github.com/dmitrijs2005/passlocker/internal/password"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var errMismatch = errors.New("passwords do not match")

func prompt(w io.Writer, label string) ([]byte, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	return pw, err
}

// run prompts on ui and writes the result to out, so the output can be
// redirected without capturing the prompts.
func run(ui, out io.Writer, p *password.Protector) error {
	pw, err := prompt(ui, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	confirm, err := prompt(ui, "Repeat password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(pw, confirm) {
		return errMismatch
	}

	salt, hash, err := p.HashPassword(string(pw))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "salt: %s\nhash: %s\n", salt, hash)
	return err
}

func main() {
	if err := run(os.Stderr, os.Stdout, password.Default()); err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
}
