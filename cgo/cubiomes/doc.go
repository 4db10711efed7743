// Package cubiomes provides CGO bindings for the cubiomes world generation
// library. It implements the driven.WorldOracle and driven.OracleFactory
// interfaces.
//
// The binding is compiled only with the cubiomes build tag:
//
//	go build -tags cubiomes ./cmd/mcmaps
//
// Without it, every oracle fails to construct with domain.ErrOracleUnavailable
// and search falls back to coordinates and pin names.
//
// Build requires:
//   - libcubiomes.a and its headers installed under cubiomes/
//   - Build from https://github.com/Cubitect/cubiomes with make libcubiomes
package cubiomes
