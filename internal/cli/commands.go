package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
	clihelpers "gitlab.com/ayufan/golang-cli-helpers"
)

type Handler interface {
	Execute(context *Context) error
}

type Config = cli.Command

type Category struct {
	Config

	SubCategories []Category
	SubCommands   []Command
}

// Command binds a Handler to its command line definition. The exported
// fields of the handler tagged with `long` become the command flags.
type Command struct {
	Config

	Handler Handler
}

func (cmd Command) toActionFunc(a *App) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		if cliCtx.NArg() > 0 {
			return fmt.Errorf("unexpected arguments for %q: %s", cmd.Name, strings.Join(cliCtx.Args(), " "))
		}

		return cmd.Handler.Execute(a.makeContext(cliCtx))
	}
}

func (cmd Command) getFlags() []cli.Flag {
	return clihelpers.GetFlagsFromStruct(cmd.Handler)
}
