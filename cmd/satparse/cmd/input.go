package cmd

import (
	"errors"
	"io"
	"os"
)

// readExpression returns args[0] if given, otherwise reads all of stdin.
// This is the CLI's only point of file/OS-state I/O; the satparse package
// itself never touches a file descriptor or an environment variable.
func readExpression(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	if len(contents) == 0 {
		return "", errors.New("no expression given: pass one as an argument or pipe it on stdin")
	}
	return string(contents), nil
}
