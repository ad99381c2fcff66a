package cli

import (
	stdContext "context"
	"io"
	"os"

	"github.com/urfave/cli"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/config"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
)

// Context is shared by the hooks and the command handlers of one invocation
type Context struct {
	Ctx stdContext.Context
	Cli *cli.Context

	config config.Global
	logger logging.Logger
	output io.Writer
}

func (c *Context) SetConfig(cfg config.Global) {
	c.config = cfg
}

func (c *Context) Config() config.Global {
	return c.config
}

func (c *Context) SetLogger(logger logging.Logger) {
	c.logger = logger
}

func (c *Context) Logger() logging.Logger {
	return c.logger
}

func (c *Context) SetOutput(w io.Writer) {
	c.output = w
}

// Output is where commands write their results; logs go to the logger
func (c *Context) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}

	return c.output
}
