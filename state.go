package concursos

import "strings"

// State is a Brazilian federative unit.
type State struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

var states = []State{
	{Code: "AC", Name: "Acre"},
	{Code: "AL", Name: "Alagoas"},
	{Code: "AM", Name: "Amazonas"},
	{Code: "AP", Name: "Amapá"},
	{Code: "BA", Name: "Bahia"},
	{Code: "CE", Name: "Ceará"},
	{Code: "DF", Name: "Distrito Federal"},
	{Code: "ES", Name: "Espírito Santo"},
	{Code: "GO", Name: "Goiás"},
	{Code: "MA", Name: "Maranhão"},
	{Code: "MG", Name: "Minas Gerais"},
	{Code: "MS", Name: "Mato Grosso do Sul"},
	{Code: "MT", Name: "Mato Grosso"},
	{Code: "PA", Name: "Pará"},
	{Code: "PB", Name: "Paraíba"},
	{Code: "PE", Name: "Pernambuco"},
	{Code: "PI", Name: "Piauí"},
	{Code: "PR", Name: "Paraná"},
	{Code: "RJ", Name: "Rio de Janeiro"},
	{Code: "RN", Name: "Rio Grande do Norte"},
	{Code: "RO", Name: "Rondônia"},
	{Code: "RR", Name: "Roraima"},
	{Code: "RS", Name: "Rio Grande do Sul"},
	{Code: "SC", Name: "Santa Catarina"},
	{Code: "SE", Name: "Sergipe"},
	{Code: "SP", Name: "São Paulo"},
	{Code: "TO", Name: "Tocantins"},
}

// States returns the 27 federative units ordered by code.
// The returned slice is a copy and may be modified by the caller.
func States() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// LookupState finds a state by code, ignoring case and surrounding space.
//
// The registry is informational. Scraping does not reject unknown codes
// since the listing site decides which codes exist.
func LookupState(code string) (State, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range states {
		if s.Code == code {
			return s, true
		}
	}
	return State{}, false
}

// StateCodes returns the codes of all states ordered by code.
func StateCodes() []string {
	codes := make([]string, len(states))
	for i, s := range states {
		codes[i] = s.Code
	}
	return codes
}
