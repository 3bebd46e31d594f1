package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/concursos"
	"github.com/fwojciec/concursos/htmltomarkdown"
	"github.com/fwojciec/concursos/runewidth"
	"github.com/fwojciec/concursos/xxhash"
	"gopkg.in/yaml.v3"
)

// noContests is printed in place of a table when a state has no listings.
const noContests = "no contests found"

// listing is the document written per state in json and yaml output.
type listing struct {
	State  string                  `json:"state" yaml:"state"`
	Digest string                  `json:"digest" yaml:"digest"`
	Data   *concursos.ConcursoData `json:"data" yaml:"data"`
}

// listingWriter writes one state's listing at a time in a fixed format.
type listingWriter struct {
	w       io.Writer
	format  string
	written int

	json *json.Encoder
	yaml *yaml.Encoder
	md   *htmltomarkdown.Converter
}

func newListingWriter(w io.Writer, format string) *listingWriter {
	lw := &listingWriter{w: w, format: format}
	switch format {
	case "json":
		lw.json = json.NewEncoder(w)
		lw.json.SetIndent("", "  ")
	case "yaml":
		lw.yaml = yaml.NewEncoder(w)
		lw.yaml.SetIndent(2)
	case "markdown":
		lw.md = htmltomarkdown.NewConverter()
	}
	return lw
}

// Write writes the listing for state. Text and markdown output print a
// heading per state and noContests when data has no rows.
func (lw *listingWriter) Write(state string, data *concursos.ConcursoData) error {
	defer func() { lw.written++ }()

	switch lw.format {
	case "json", "yaml":
		digest, err := xxhash.Digest(data)
		if err != nil {
			return err
		}
		doc := listing{State: state, Digest: digest, Data: data}
		if lw.json != nil {
			return lw.json.Encode(doc)
		}
		return lw.yaml.Encode(doc)
	case "text":
		return lw.writeText(state, data)
	case "markdown":
		return lw.writeMarkdown(state, data)
	default:
		return concursos.Errorf(concursos.EINVALID, "unknown format %q", lw.format)
	}
}

func (lw *listingWriter) writeText(state string, data *concursos.ConcursoData) error {
	if lw.written > 0 {
		fmt.Fprintln(lw.w)
	}
	fmt.Fprintf(lw.w, "== %s ==\n", stateTitle(state))
	if data.IsEmpty() {
		_, err := fmt.Fprintln(lw.w, noContests)
		return err
	}
	return runewidth.WriteText(lw.w, data)
}

func (lw *listingWriter) writeMarkdown(state string, data *concursos.ConcursoData) error {
	if lw.written > 0 {
		fmt.Fprintln(lw.w)
	}
	fmt.Fprintf(lw.w, "# %s\n\n", stateTitle(state))
	if data.IsEmpty() {
		_, err := fmt.Fprintln(lw.w, noContests)
		return err
	}
	md, err := lw.md.ConvertData(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(lw.w, runewidth.AlignMarkdown(md))
	return err
}

// Close flushes any buffered output.
func (lw *listingWriter) Close() error {
	if lw.yaml != nil {
		return lw.yaml.Close()
	}
	return nil
}

// stateTitle returns "SP - São Paulo" for registered codes and the bare code
// otherwise.
func stateTitle(code string) string {
	if s, ok := concursos.LookupState(code); ok {
		return s.Code + " - " + s.Name
	}
	return code
}
