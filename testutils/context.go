// Package testutils provides general purpose utility functions for unit/integration testing.
package testutils

import (
	dbm "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/utils/funcs"
)

// NewContext returns a context backed by a fresh in-memory multistore with the given keys mounted, and a test logger
func NewContext(keys ...storetypes.StoreKey) sdk.Context {
	cms := store.NewCommitMultiStore(dbm.NewMemDB())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	funcs.MustNoErr(cms.LoadLatestVersion())

	return sdk.NewContext(cms, tmproto.Header{}, false, log.TestingLogger())
}
