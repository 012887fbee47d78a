package app

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the genesis document, keyed by module name.
type GenesisState map[string]json.RawMessage

type invariantRoute struct {
	module    string
	route     string
	invariant sdk.Invariant
}

// invariantRegistry collects module invariants in registration order.
type invariantRegistry struct {
	routes []invariantRoute
}

var _ sdk.InvariantRegistry = (*invariantRegistry)(nil)

// RegisterRoute implements sdk.InvariantRegistry.
func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes = append(r.routes, invariantRoute{module: moduleName, route: route, invariant: invar})
}
