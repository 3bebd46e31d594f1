// Package xxhash computes content digests of concurso listings so callers can
// tell whether a state's listing changed between runs.
package xxhash

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/concursos"
)

// Digest returns the hex-encoded xxhash of the JSON encoding of data.
// Equal listings always produce equal digests.
func Digest(data *concursos.ConcursoData) (string, error) {
	if data == nil {
		data = concursos.NewConcursoData()
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encoding listing: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b)), nil
}
