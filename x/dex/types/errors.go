package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrIdenticalAssets     = errors.Register(ModuleName, 2, "identical assets")
	ErrInvalidAmount       = errors.Register(ModuleName, 3, "invalid amount")
	ErrInvalidAsset        = errors.Register(ModuleName, 4, "invalid asset")
	ErrInsufficientBalance = errors.Register(ModuleName, 5, "insufficient balance")
	ErrNoPool              = errors.Register(ModuleName, 6, "no pool for asset pair")
	ErrAssetAlreadyExists  = errors.Register(ModuleName, 7, "asset already exists")
	ErrEmptyPool           = errors.Register(ModuleName, 8, "pool is empty")
	ErrDeadlinePassed      = errors.Register(ModuleName, 9, "deadline passed")
	ErrOverflow            = errors.Register(ModuleName, 10, "arithmetic overflow")
	ErrInvalidAddress      = errors.Register(ModuleName, 11, "invalid address")
	ErrInvalidParams       = errors.Register(ModuleName, 12, "invalid params")
	ErrInvalidGenesis      = errors.Register(ModuleName, 13, "invalid genesis state")
)
