package testutil

import (
	"encoding/json"
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// MockWasmKeeper implements WasmKeeperInterface for testing
type MockWasmKeeper struct {
	contracts    map[string]*wasmtypes.ContractInfo
	queryResults map[string][]byte
}

// NewMockWasmKeeper creates a new mock wasm keeper
func NewMockWasmKeeper() *MockWasmKeeper {
	return &MockWasmKeeper{
		contracts:    make(map[string]*wasmtypes.ContractInfo),
		queryResults: make(map[string][]byte),
	}
}

// GetContractInfo returns contract info for the given address
func (m *MockWasmKeeper) GetContractInfo(ctx sdk.Context, contractAddress sdk.AccAddress) *wasmtypes.ContractInfo {
	return m.contracts[contractAddress.String()]
}

// QuerySmart executes a smart contract query
func (m *MockWasmKeeper) QuerySmart(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	if result, exists := m.queryResults[contractAddr.String()]; exists {
		return result, nil
	}
	return nil, fmt.Errorf("no query result registered for %s", contractAddr)
}

// SetContractInfo sets contract info for testing
func (m *MockWasmKeeper) SetContractInfo(contractAddr sdk.AccAddress, admin string) {
	m.contracts[contractAddr.String()] = &wasmtypes.ContractInfo{
		Admin: admin,
	}
}

// SetQueryResult sets a specific query result for a contract
func (m *MockWasmKeeper) SetQueryResult(contractAddr sdk.AccAddress, result []byte) {
	m.queryResults[contractAddr.String()] = result
}

// Reset clears all stored data
func (m *MockWasmKeeper) Reset() {
	m.contracts = make(map[string]*wasmtypes.ContractInfo)
	m.queryResults = make(map[string][]byte)
}

// MockBankKeeper implements BankKeeper for testing. Balances live in their
// own KVStore mounted next to the module store, so a cached multistore
// branch covers bank writes together with module state and dropping the
// branch rolls both back. Module accounts are addressed via their derived
// module address.
type MockBankKeeper struct {
	storeKey storetypes.StoreKey
	blocked  map[string]bool
}

// NewMockBankKeeper creates a mock bank keeper over the given store key. The
// key must be mounted in the same multistore as the module store.
func NewMockBankKeeper(storeKey storetypes.StoreKey) *MockBankKeeper {
	return &MockBankKeeper{
		storeKey: storeKey,
		blocked:  make(map[string]bool),
	}
}

func (m *MockBankKeeper) getBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins {
	bz := ctx.KVStore(m.storeKey).Get(addr.Bytes())
	if bz == nil {
		return sdk.NewCoins()
	}
	var coins sdk.Coins
	if err := json.Unmarshal(bz, &coins); err != nil {
		panic(err)
	}
	return coins
}

func (m *MockBankKeeper) setBalances(ctx sdk.Context, addr sdk.AccAddress, coins sdk.Coins) {
	store := ctx.KVStore(m.storeKey)
	if coins.IsZero() {
		store.Delete(addr.Bytes())
		return
	}
	bz, err := json.Marshal(coins)
	if err != nil {
		panic(err)
	}
	store.Set(addr.Bytes(), bz)
}

// FundAccount credits an account, bypassing transfer checks
func (m *MockBankKeeper) FundAccount(ctx sdk.Context, addr sdk.AccAddress, amt sdk.Coins) {
	m.setBalances(ctx, addr, m.getBalances(ctx, addr).Add(amt...))
}

// FundModule credits a module account, bypassing transfer checks
func (m *MockBankKeeper) FundModule(ctx sdk.Context, moduleName string, amt sdk.Coins) {
	m.FundAccount(ctx, authtypes.NewModuleAddress(moduleName), amt)
}

// SetBlocked marks an address as blocked from receiving funds
func (m *MockBankKeeper) SetBlocked(addr sdk.AccAddress, blocked bool) {
	m.blocked[addr.String()] = blocked
}

func (m *MockBankKeeper) transfer(ctx sdk.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	balance := m.getBalances(ctx, from)
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, balance, amt)
	}
	m.setBalances(ctx, from, balance.Sub(amt...))
	m.setBalances(ctx, to, m.getBalances(ctx, to).Add(amt...))
	return nil
}

// SendCoins implements BankKeeper
func (m *MockBankKeeper) SendCoins(ctx sdk.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.transfer(ctx, fromAddr, toAddr, amt)
}

// SendCoinsFromModuleToAccount implements BankKeeper
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.transfer(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

// SendCoinsFromAccountToModule implements BankKeeper
func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.transfer(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

// GetBalance implements BankKeeper
func (m *MockBankKeeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.getBalances(ctx, addr).AmountOf(denom))
}

// GetAllBalances implements BankKeeper
func (m *MockBankKeeper) GetAllBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins {
	return m.getBalances(ctx, addr)
}

// BlockedAddr implements BankKeeper
func (m *MockBankKeeper) BlockedAddr(addr sdk.AccAddress) bool {
	return m.blocked[addr.String()]
}

// MockAccountKeeper implements AccountKeeper for testing
type MockAccountKeeper struct {
	accounts map[string]authtypes.AccountI
}

// NewMockAccountKeeper creates a new mock account keeper
func NewMockAccountKeeper() *MockAccountKeeper {
	return &MockAccountKeeper{
		accounts: make(map[string]authtypes.AccountI),
	}
}

// SetAccount registers an account for testing
func (m *MockAccountKeeper) SetAccount(acc authtypes.AccountI) {
	m.accounts[acc.GetAddress().String()] = acc
}

// GetAccount implements AccountKeeper
func (m *MockAccountKeeper) GetAccount(ctx sdk.Context, addr sdk.AccAddress) authtypes.AccountI {
	return m.accounts[addr.String()]
}

// GetModuleAddress implements AccountKeeper
func (m *MockAccountKeeper) GetModuleAddress(moduleName string) sdk.AccAddress {
	return authtypes.NewModuleAddress(moduleName)
}

// GetModuleAccount implements AccountKeeper
func (m *MockAccountKeeper) GetModuleAccount(ctx sdk.Context, moduleName string) authtypes.ModuleAccountI {
	return authtypes.NewEmptyModuleAccount(moduleName)
}
