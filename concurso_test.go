package concursos_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/concursos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConcursoData(t *testing.T) {
	t.Parallel()

	t.Run("serializes empty result as empty arrays", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(concursos.NewConcursoData())

		require.NoError(t, err)
		assert.JSONEq(t, `{"headers":[],"openRows":[],"predictedRows":[]}`, string(b))
	})

	t.Run("is empty", func(t *testing.T) {
		t.Parallel()

		data := concursos.NewConcursoData()

		assert.True(t, data.IsEmpty())
		assert.Equal(t, 0, data.Len())
	})
}

func TestCell_JSON(t *testing.T) {
	t.Parallel()

	t.Run("cell without link serializes null", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(concursos.Cell{Text: "Vagas"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"text":"Vagas","link":null}`, string(b))
	})

	t.Run("cell with link serializes url", func(t *testing.T) {
		t.Parallel()

		cell := concursos.Cell{Text: "TJ-SP", Link: concursos.StringPtr("https://concursosnobrasil.com/concursos/sp/tj.html")}
		b, err := json.Marshal(cell)

		require.NoError(t, err)
		assert.JSONEq(t, `{"text":"TJ-SP","link":"https://concursosnobrasil.com/concursos/sp/tj.html"}`, string(b))
		assert.True(t, cell.HasLink())
		assert.Equal(t, "https://concursosnobrasil.com/concursos/sp/tj.html", cell.LinkURL())
	})
}

func TestRow_IsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, concursos.Row{Cells: []concursos.Cell{{Text: ""}, {Text: ""}}}.IsBlank())
	assert.True(t, concursos.Row{}.IsBlank())
	assert.False(t, concursos.Row{Cells: []concursos.Cell{{Text: ""}, {Text: "10"}}}.IsBlank())
}

func TestConcursoData_Len(t *testing.T) {
	t.Parallel()

	data := &concursos.ConcursoData{
		Headers:       []string{"Órgão"},
		OpenRows:      []concursos.Row{{Cells: []concursos.Cell{{Text: "A"}}}, {Cells: []concursos.Cell{{Text: "B"}}}},
		PredictedRows: []concursos.Row{{Cells: []concursos.Cell{{Text: "C"}}}},
	}

	assert.Equal(t, 3, data.Len())
	assert.False(t, data.IsEmpty())
}
