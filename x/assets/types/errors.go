package types

import (
	"cosmossdk.io/errors"
)

// Assets module sentinel errors
var (
	ErrUnknownAsset        = errors.Register(ModuleName, 2, "unknown asset")
	ErrAssetExists         = errors.Register(ModuleName, 3, "asset already exists")
	ErrInsufficientBalance = errors.Register(ModuleName, 4, "insufficient balance")
	ErrBelowMinBalance     = errors.Register(ModuleName, 5, "balance below asset minimum")
	ErrInvalidAmount       = errors.Register(ModuleName, 6, "invalid amount")
	ErrInvalidGenesis      = errors.Register(ModuleName, 7, "invalid genesis state")
)
