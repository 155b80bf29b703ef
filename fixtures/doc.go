// Package fixtures provides a small library of predefined example graphs:
// ready-made adjacency matrices with index-aligned labels, a description,
// and a suggested source/target pair for path queries.
//
// Fixtures are one of the engine's ready-made input suppliers (alongside
// manual text entry via matrix.Parse). They are plain data: every fixture
// passes matrix.Validate, and the accessors hand out deep copies so callers
// can mutate freely without corrupting the library.
//
// Lookup:
//
//   - All() returns every fixture in a stable, documentation-friendly order.
//   - ByName(name) returns one fixture or ErrUnknownFixture.
package fixtures
