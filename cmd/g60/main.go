package main

import (
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/juliotpaez/G60/internal/args"
	"github.com/juliotpaez/G60/internal/commands/decode"
	"github.com/juliotpaez/G60/internal/commands/encode"
	"github.com/juliotpaez/G60/internal/commands/version"
	"github.com/juliotpaez/G60/internal/util"
	"github.com/pkg/errors"
)

// G60 is the main executable
type G60 struct {
	parser *flags.Parser
}

// NewG60 will create a new instance of G60 and initialize the parser
func NewG60() *G60 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	g := &G60{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	g.setupGeneral()
	g.setupVersion()
	g.setupEncode()
	g.setupDecode()

	return g
}

// setupGeneral will configure general options
func (g *G60) setupGeneral() {
	if _, err := g.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (g *G60) setupVersion() {
	cmd := &version.Command{}
	_, err := g.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (g *G60) setupEncode() {
	cmd := encode.NewCommand()
	_, err := g.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode the arguments, or standard input, into a G60 string",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (g *G60) setupDecode() {
	cmd := decode.NewCommand()
	_, err := g.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode the arguments, or standard input, from a G60 string back into bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

func main() {
	g60 := NewG60()

	_, err := g60.parser.Parse()
	util.MustErrorNilOrExit(err)
}
