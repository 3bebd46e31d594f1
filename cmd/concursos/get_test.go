package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/concursos"
	main "github.com/fwojciec/concursos/cmd/concursos"
	"github.com/fwojciec/concursos/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleData() *concursos.ConcursoData {
	return &concursos.ConcursoData{
		Headers: []string{"Órgão", "Vagas"},
		OpenRows: []concursos.Row{
			{Cells: []concursos.Cell{
				{Text: "Prefeitura de Itu", Link: concursos.StringPtr("https://concursosnobrasil.com/itu")},
				{Text: "12"},
			}},
		},
		PredictedRows: []concursos.Row{
			{Cells: []concursos.Cell{{Text: "Câmara"}, {Text: "4"}}},
		},
	}
}

func newDeps(svc concursos.ConcursoService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Service: svc,
	}, stdout, stderr
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes json envelope with state and digest", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ConcursoService{
			ScrapeFn: func(_ context.Context, state string) (*concursos.ConcursoData, error) {
				assert.Equal(t, "sp", state)
				return sampleData(), nil
			},
		}
		deps, stdout, stderr := newDeps(svc)

		cmd := &main.GetCmd{States: []string{"sp"}, Format: "json"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stderr.String())

		var doc struct {
			State  string                  `json:"state"`
			Digest string                  `json:"digest"`
			Data   *concursos.ConcursoData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, "SP", doc.State)
		assert.Len(t, doc.Digest, 16)
		assert.Equal(t, sampleData(), doc.Data)
	})

	t.Run("writes one yaml document per state", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ConcursoService{
			ScrapeFn: func(context.Context, string) (*concursos.ConcursoData, error) {
				return sampleData(), nil
			},
		}
		deps, stdout, _ := newDeps(svc)

		cmd := &main.GetCmd{States: []string{"sp", "rj"}, Format: "yaml"}
		err := cmd.Run(deps)

		require.NoError(t, err)

		dec := yaml.NewDecoder(strings.NewReader(stdout.String()))
		var states []string
		for {
			var doc struct {
				State string `yaml:"state"`
			}
			if err := dec.Decode(&doc); err != nil {
				require.ErrorIs(t, err, io.EOF)
				break
			}
			states = append(states, doc.State)
		}
		assert.Equal(t, []string{"SP", "RJ"}, states)
	})

	t.Run("writes text tables with state heading", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ConcursoService{
			ScrapeFn: func(context.Context, string) (*concursos.ConcursoData, error) {
				return sampleData(), nil
			},
		}
		deps, stdout, _ := newDeps(svc)

		cmd := &main.GetCmd{States: []string{"sp"}, Format: "text"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "== SP - São Paulo ==")
		assert.Contains(t, out, "Open (1)")
		assert.Contains(t, out, "Predicted (1)")
		assert.Contains(t, out, "Prefeitura de Itu <https://concursosnobrasil.com/itu>")
	})

	t.Run("writes markdown tables", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ConcursoService{
			ScrapeFn: func(context.Context, string) (*concursos.ConcursoData, error) {
				return sampleData(), nil
			},
		}
		deps, stdout, _ := newDeps(svc)

		cmd := &main.GetCmd{States: []string{"sp"}, Format: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "# SP - São Paulo")
		assert.Contains(t, out, "## Open")
		assert.Contains(t, out, "[Prefeitura de Itu](https://concursosnobrasil.com/itu)")
	})

	t.Run("reports empty result", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ConcursoService{
			ScrapeFn: func(context.Context, string) (*concursos.ConcursoData, error) {
				return concursos.NewConcursoData(), nil
			},
		}
		deps, stdout, _ := newDeps(svc)

		cmd := &main.GetCmd{States: []string{"ac"}, Format: "text"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "no contests found")
	})

	t.Run("reports scrape failure and continues", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ConcursoService{
			ScrapeFn: func(_ context.Context, state string) (*concursos.ConcursoData, error) {
				if state == "zz" {
					return nil, &concursos.ScrapeError{
						State: "ZZ",
						Err:   &concursos.FetchError{URL: "https://x/zz/", StatusCode: 404, Status: "Not Found"},
					}
				}
				return sampleData(), nil
			},
		}
		deps, stdout, stderr := newDeps(svc)

		cmd := &main.GetCmd{States: []string{"zz", "sp"}, Format: "text"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 states failed")
		assert.Contains(t, stderr.String(), "could not retrieve data for ZZ")
		assert.Contains(t, stdout.String(), "== SP - São Paulo ==")
	})

	t.Run("shows hint for invalid state", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ConcursoService{
			ScrapeFn: func(context.Context, string) (*concursos.ConcursoData, error) {
				return nil, concursos.Errorf(concursos.EINVALID, "state code is required")
			},
		}
		deps, _, stderr := newDeps(svc)

		cmd := &main.GetCmd{States: []string{" "}, Format: "json"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "state code is required")
		assert.Contains(t, stderr.String(), "concursos states")
	})
}
