//go:build !windows

package parse

import (
	"github.com/google/shlex"
	"github.com/napalu/goclip/errs"
)

// Split breaks a command string into arguments using POSIX shell quoting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, errs.ErrParseCommandString.Wrap(err)
	}

	return args, nil
}
