// Package concursos extracts public-exam ("concurso") listings published per
// Brazilian state on concursosnobrasil.com. It fetches one listing page for a
// state, finds the listing table, works out its column headers and splits its
// rows into open and predicted contests.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package concursos
