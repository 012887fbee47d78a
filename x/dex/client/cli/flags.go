package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// Flag constants for dex CLI commands
const (
	FlagFrom     = "from"
	FlagDeadline = "deadline"
)

// DefaultDeadline is how long after submission a transaction stays valid.
const DefaultDeadline = time.Minute

// Host is the state machine the commands execute against.
type Host interface {
	// Deliver runs fn as one committed block at blockTime.
	Deliver(blockTime time.Time, fn func(ctx sdk.Context) error) error
	// Query runs fn against committed state without persisting anything.
	Query(fn func(ctx sdk.Context) error) error
	GetDexKeeper() *keeper.Keeper
	Close() error
}

// HostOpener opens the host a command runs against. The command closes it.
type HostOpener func(cmd *cobra.Command) (Host, error)

// FlagSetTx returns the flags shared by every dex transaction command.
func FlagSetTx() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.String(FlagFrom, "", "Bech32 address of the signing account")
	fs.Duration(FlagDeadline, DefaultDeadline, "How long after the block time the transaction stays valid")
	return fs
}

func addTxFlags(cmd *cobra.Command) {
	cmd.Flags().AddFlagSet(FlagSetTx())
	_ = cmd.MarkFlagRequired(FlagFrom)
}

func readTxFlags(cmd *cobra.Command) (string, time.Time, error) {
	from, err := cmd.Flags().GetString(FlagFrom)
	if err != nil {
		return "", time.Time{}, err
	}
	window, err := cmd.Flags().GetDuration(FlagDeadline)
	if err != nil {
		return "", time.Time{}, err
	}
	return from, time.Now().UTC().Add(window), nil
}

func parseAssetID(name, arg string) (types.AssetID, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s (must be an asset id)", name, arg)
	}
	return types.AssetID(id), nil
}

func parseAmount(name, arg string) (math.Int, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	if !amount.IsPositive() {
		return math.Int{}, fmt.Errorf("%s must be positive", name)
	}
	return amount, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

// withHost opens the host, runs fn and closes the host again.
func withHost(cmd *cobra.Command, open HostOpener, fn func(host Host) error) (err error) {
	host, err := open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := host.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(host)
}
