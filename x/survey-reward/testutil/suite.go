package testutil

import (
	"testing"
	"time"

	"github.com/cometbft/cometbft/libs/log"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/qstn-network/qstn-chain/x/survey-reward/keeper"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// Authority is the fixed admin account used by keeper tests.
var Authority = authtypes.NewModuleAddress("gov")

// TestSuite provides common test setup functionality
type TestSuite struct {
	Ctx           sdk.Context
	Keeper        keeper.Keeper
	BankKeeper    *MockBankKeeper
	AccountKeeper *MockAccountKeeper
	WasmKeeper    *MockWasmKeeper

	// Test accounts
	Gateway sdk.AccAddress
	Creator sdk.AccAddress
	User    sdk.AccAddress
	User2   sdk.AccAddress
}

// SetupKeeper creates a keeper backed by an in-memory store with mocked
// account, bank and wasm keepers.
func SetupKeeper(t *testing.T) (keeper.Keeper, sdk.Context, *MockBankKeeper, *MockWasmKeeper) {
	t.Helper()

	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	bankStoreKey := sdk.NewKVStoreKey("mock_bank")

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	ms.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, nil)
	if err := ms.LoadLatestVersion(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	bankKeeper := NewMockBankKeeper(bankStoreKey)
	wasmKeeper := NewMockWasmKeeper()
	k := keeper.NewKeeper(storeKey, NewMockAccountKeeper(), bankKeeper, wasmKeeper, Authority.String())

	ctx := sdk.NewContext(
		ms,
		tmproto.Header{Time: time.Unix(1700000000, 0)},
		false,
		log.NewNopLogger(),
	)

	return *k, ctx, bankKeeper, wasmKeeper
}

// SetupSuite creates a complete test suite with funded test accounts and the
// gateway registered in params.
func SetupSuite(t *testing.T) *TestSuite {
	t.Helper()

	k, ctx, bankKeeper, wasmKeeper := SetupKeeper(t)

	gateway := sdk.AccAddress("gateway_____________")
	creator := sdk.AccAddress("creator_____________")
	user := sdk.AccAddress("user________________")
	user2 := sdk.AccAddress("user2_______________")

	k.SetParams(ctx, types.Params{
		TrustedChainID:  TrustedChainID,
		TrustedSender:   TrustedSender,
		GatewayContract: gateway.String(),
	})

	bankKeeper.FundAccount(ctx, gateway, sdk.NewCoins(sdk.NewCoin(types.BaseDenom, sdk.NewInt(1_000_000_000))))

	accountKeeper := NewMockAccountKeeper()
	accountKeeper.SetAccount(authtypes.NewBaseAccount(gateway, nil, 0, 0))
	accountKeeper.SetAccount(authtypes.NewBaseAccount(creator, nil, 1, 0))

	return &TestSuite{
		Ctx:           ctx,
		Keeper:        k,
		BankKeeper:    bankKeeper,
		AccountKeeper: accountKeeper,
		WasmKeeper:    wasmKeeper,
		Gateway:       gateway,
		Creator:       creator,
		User:          user,
		User2:         user2,
	}
}
