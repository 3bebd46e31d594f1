package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/concursos"
	"gopkg.in/yaml.v3"
)

// Run executes the states command.
func (c *StatesCmd) Run(deps *Dependencies) error {
	states := concursos.States()

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	case "yaml":
		enc := yaml.NewEncoder(deps.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(states); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, s := range states {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", s.Code, s.Name)
		}
		return nil
	}
}
