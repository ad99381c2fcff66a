package cli

import (
	"errors"
	"fmt"
)

type Hook func(ctx *Context) error

type Hooks []Hook

// Execute stops at the first failing hook
func (h Hooks) Execute(cliCtx *Context) error {
	for _, f := range h {
		err := f(cliCtx)
		if err != nil {
			return fmt.Errorf("hook failure: %w", err)
		}
	}

	return nil
}

// ExecuteAll runs every hook and joins their failures
func (h Hooks) ExecuteAll(cliCtx *Context) error {
	var errs []error
	for _, f := range h {
		err := f(cliCtx)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("hook failure: %w", errors.Join(errs...))
}

func NewNopHook() Hook {
	return func(ctx *Context) error { return nil }
}
