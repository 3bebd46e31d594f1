package main

import (
	"fmt"

	cgin "github.com/fwojciec/concursos/gin"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := cgin.NewServer(c.Addr, cgin.NewHandler(deps.Service), deps.Logger)
	fmt.Fprintf(deps.Stdout, "Serving on %s\n", c.Addr)
	return srv.ListenAndServe(deps.Ctx)
}
