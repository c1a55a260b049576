package encode

import (
	"fmt"
	"io"
	"os"

	g60 "github.com/juliotpaez/G60"
	"github.com/juliotpaez/G60/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes its arguments, or standard input, into G60 strings.
type Command struct {
	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if len(args) > 0 {
		for _, arg := range args {
			if _, err := fmt.Fprintln(c.out, g60.EncodeString(arg)); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	data, err := io.ReadAll(c.in)
	if err != nil {
		return errors.WithStack(err)
	}

	log.Debugf("Encoding %d bytes from standard input", len(data))
	if _, err := fmt.Fprintln(c.out, g60.Encode(data)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
