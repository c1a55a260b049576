package decode

import (
	"fmt"
	"io"
	"os"
	"strings"

	g60 "github.com/juliotpaez/G60"
	"github.com/juliotpaez/G60/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes its arguments, or standard input, from G60 strings
// back into the original bytes.
type Command struct {
	Text bool `short:"t" long:"text" env:"G60_TEXT" description:"Require the decoded bytes to be valid text and print them as a line instead of raw output"`

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
			if err := c.decode(arg); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := io.ReadAll(c.in)
	if err != nil {
		return errors.WithStack(err)
	}

	// A trailing newline is an artifact of the terminal, not part of the
	// encoded string.
	return c.decode(strings.TrimRight(string(data), "\r\n"))
}

func (c *Command) decode(encoded string) error {
	log.Debugf("Decoding %d symbols", len(encoded))

	if c.Text {
		text, err := g60.DecodeToString(encoded)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.out, text); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}

	raw, err := g60.Decode(encoded)
	if err != nil {
		return err
	}
	if _, err := c.out.Write(raw); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
