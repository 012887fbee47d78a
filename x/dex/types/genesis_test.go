package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawdex/x/dex/types"
)

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Equal(t, types.DefaultParams(), gs.Params)
	require.Empty(t, gs.Pools)
	require.Empty(t, gs.LiquiditySeeds)
}

func TestGenesisState_Validate(t *testing.T) {
	seed := types.LiquiditySeed{
		Amount0:  types.NewAssetAmount(math.NewInt(100), 0),
		Amount1:  types.NewAssetAmount(math.NewInt(200), 1),
		Provider: validAddr,
	}

	tests := []struct {
		name    string
		mutate  func(gs *types.GenesisState)
		wantErr bool
	}{
		{"default", func(*types.GenesisState) {}, false},
		{
			"pools and seeds",
			func(gs *types.GenesisState) {
				gs.NextShareAssetID = types.MaxAssetID - 2
				gs.Pools = []types.Pool{
					{ShareAsset: types.MaxAssetID, Pair: types.Pair{Low: 0, High: 1}},
					{ShareAsset: types.MaxAssetID - 1, Pair: types.Pair{Low: 1, High: 2}},
				}
				gs.LiquiditySeeds = []types.LiquiditySeed{seed}
			},
			false,
		},
		{
			"invalid params",
			func(gs *types.GenesisState) { gs.Params.SwapFeeDenominator = math.ZeroInt() },
			true,
		},
		{
			"duplicate pair",
			func(gs *types.GenesisState) {
				gs.Pools = []types.Pool{
					{ShareAsset: types.MaxAssetID, Pair: types.Pair{Low: 0, High: 1}},
					{ShareAsset: types.MaxAssetID - 1, Pair: types.Pair{Low: 0, High: 1}},
				}
			},
			true,
		},
		{
			"duplicate share asset",
			func(gs *types.GenesisState) {
				gs.Pools = []types.Pool{
					{ShareAsset: types.MaxAssetID, Pair: types.Pair{Low: 0, High: 1}},
					{ShareAsset: types.MaxAssetID, Pair: types.Pair{Low: 1, High: 2}},
				}
			},
			true,
		},
		{
			"share asset not yet allocated",
			func(gs *types.GenesisState) {
				gs.NextShareAssetID = types.MaxAssetID
				gs.Pools = []types.Pool{{ShareAsset: types.MaxAssetID, Pair: types.Pair{Low: 0, High: 1}}}
			},
			true,
		},
		{
			"non canonical pool",
			func(gs *types.GenesisState) {
				gs.Pools = []types.Pool{{ShareAsset: types.MaxAssetID, Pair: types.Pair{Low: 1, High: 0}}}
			},
			true,
		},
		{
			"seed with identical assets",
			func(gs *types.GenesisState) {
				bad := seed
				bad.Amount1.Asset = bad.Amount0.Asset
				gs.LiquiditySeeds = []types.LiquiditySeed{bad}
			},
			true,
		},
		{
			"seed with zero amount",
			func(gs *types.GenesisState) {
				bad := seed
				bad.Amount0.Amount = math.ZeroInt()
				gs.LiquiditySeeds = []types.LiquiditySeed{bad}
			},
			true,
		},
		{
			"seed with bad provider",
			func(gs *types.GenesisState) {
				bad := seed
				bad.Provider = "paw1invalid"
				gs.LiquiditySeeds = []types.LiquiditySeed{bad}
			},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
			tc.mutate(gs)
			err := gs.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	p := types.DefaultParams()
	require.NoError(t, p.Validate())

	noFee := p
	noFee.SwapFeeNumerator = noFee.SwapFeeDenominator
	require.NoError(t, noFee.Validate())

	bad := p
	bad.SwapFeeNumerator = math.NewInt(1001)
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidParams)

	bad = p
	bad.ShareMinBalance = math.ZeroInt()
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidParams)

	bad = p
	bad.ShareDecimals = 256
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidParams)
}
