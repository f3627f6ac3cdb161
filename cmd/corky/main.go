package main

import (
	"fmt"
	"os"

	"github.com/corky-dev/corky/internal/cli"
	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/output"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		renderer, rerr := output.NewRenderer(os.Stderr, true)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			_ = renderer.RenderError(err)
		}
		os.Exit(errors.ExitCode(err))
	}
}
