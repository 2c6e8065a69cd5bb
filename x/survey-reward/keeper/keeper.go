package keeper

import (
	"encoding/json"
	"fmt"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// Keeper owns the survey ledger: survey records, payout memberships,
// consumed proof tokens, the manager set, remote routes and module params.
// Records are stored as JSON under the prefixes in types/keys.go.
type Keeper struct {
	storeKey      storetypes.StoreKey
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
	wasmKeeper    types.WasmKeeperInterface
	authority     string
}

// NewKeeper creates a new survey Keeper instance. The authority is the
// account allowed to administer managers, routes, params and the
// disbursement address; it is also the genesis fallback manager.
func NewKeeper(
	storeKey storetypes.StoreKey,
	ak types.AccountKeeper,
	bk types.BankKeeper,
	wk types.WasmKeeperInterface,
	authority string,
) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Errorf("invalid survey module authority: %w", err))
	}
	return &Keeper{
		storeKey:      storeKey,
		accountKeeper: ak,
		bankKeeper:    bk,
		wasmKeeper:    wk,
		authority:     authority,
	}
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func mustMarshal(v interface{}) []byte {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("failed to marshal %T: %w", v, err))
	}
	return bz
}

func mustUnmarshal(bz []byte, v interface{}) {
	if err := json.Unmarshal(bz, v); err != nil {
		panic(fmt.Errorf("failed to unmarshal %T: %w", v, err))
	}
}

// === Survey records ===

// SetSurvey writes a survey record to the store
func (k Keeper) SetSurvey(ctx sdk.Context, survey types.SurveyRecord) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetSurveyKey(survey.ID), mustMarshal(&survey))
}

// GetSurvey returns a survey record from the store
func (k Keeper) GetSurvey(ctx sdk.Context, surveyID string) (types.SurveyRecord, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetSurveyKey(surveyID))
	if bz == nil {
		return types.SurveyRecord{}, false
	}
	var survey types.SurveyRecord
	mustUnmarshal(bz, &survey)
	return survey, true
}

// HasSurvey checks if a survey exists in the store
func (k Keeper) HasSurvey(ctx sdk.Context, surveyID string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetSurveyKey(surveyID))
}

// IterateSurveys iterates over all survey records and calls the provided callback
func (k Keeper) IterateSurveys(ctx sdk.Context, cb func(survey types.SurveyRecord) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.SurveyKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var survey types.SurveyRecord
		mustUnmarshal(iterator.Value(), &survey)
		if cb(survey) {
			break
		}
	}
}

// GetAllSurveys returns all survey records in the store
func (k Keeper) GetAllSurveys(ctx sdk.Context) []types.SurveyRecord {
	var surveys []types.SurveyRecord
	k.IterateSurveys(ctx, func(survey types.SurveyRecord) bool {
		surveys = append(surveys, survey)
		return false
	})
	return surveys
}

// GetSurveysPaginated returns survey records with pagination support
func (k Keeper) GetSurveysPaginated(ctx sdk.Context, pageReq *query.PageRequest) ([]*types.SurveyRecord, *query.PageResponse, error) {
	var surveys []*types.SurveyRecord

	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.SurveyKeyPrefix)
	pageRes, err := query.Paginate(store, pageReq, func(key []byte, value []byte) error {
		var survey types.SurveyRecord
		if err := json.Unmarshal(value, &survey); err != nil {
			return fmt.Errorf("failed to unmarshal survey record: %w", err)
		}
		surveys = append(surveys, &survey)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return surveys, pageRes, nil
}

// === Reward memberships ===

// SetRewardMembership marks a participant as paid for a survey
func (k Keeper) SetRewardMembership(ctx sdk.Context, surveyID, participant string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetRewardMembershipKey(surveyID, participant), []byte{1})
}

// HasRewardMembership checks whether a participant was already paid for a survey
func (k Keeper) HasRewardMembership(ctx sdk.Context, surveyID, participant string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetRewardMembershipKey(surveyID, participant))
}

// IterateRewardMemberships iterates over all payout markers
func (k Keeper) IterateRewardMemberships(ctx sdk.Context, cb func(m types.RewardMembership) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.RewardMembershipKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		surveyID, participant := types.SplitRewardMembershipKey(iterator.Key())
		if cb(types.RewardMembership{SurveyID: surveyID, Participant: participant}) {
			break
		}
	}
}

// GetAllRewardMemberships returns all payout markers
func (k Keeper) GetAllRewardMemberships(ctx sdk.Context) []types.RewardMembership {
	var memberships []types.RewardMembership
	k.IterateRewardMemberships(ctx, func(m types.RewardMembership) bool {
		memberships = append(memberships, m)
		return false
	})
	return memberships
}

// CountRewardMemberships returns the number of paid participants for a survey
func (k Keeper) CountRewardMemberships(ctx sdk.Context, surveyID string) uint64 {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.GetRewardMembershipPrefix(surveyID))
	defer iterator.Close()

	var count uint64
	for ; iterator.Valid(); iterator.Next() {
		count++
	}
	return count
}

// === Used proof tokens ===

// MarkTokenUsed records a proof token as consumed. Irreversible; used
// tokens are never pruned.
func (k Keeper) MarkTokenUsed(ctx sdk.Context, token []byte) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetUsedTokenKey(token), []byte{1})
}

// IsTokenUsed checks whether a proof token was already consumed
func (k Keeper) IsTokenUsed(ctx sdk.Context, token []byte) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetUsedTokenKey(token))
}

// IterateUsedTokens iterates over all consumed proof tokens
func (k Keeper) IterateUsedTokens(ctx sdk.Context, cb func(token []byte) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.UsedTokenKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		if cb(types.GetTokenFromUsedTokenKey(iterator.Key())) {
			break
		}
	}
}

// === Managers ===

// SetManager flips the manager flag for an address. Disabled managers are
// deleted rather than stored as false.
func (k Keeper) SetManager(ctx sdk.Context, addr string, enabled bool) {
	store := ctx.KVStore(k.storeKey)
	key := types.GetManagerKey(addr)
	if enabled {
		store.Set(key, []byte{1})
		return
	}
	store.Delete(key)
}

// IsManager checks whether an address is an authorized proof signer
func (k Keeper) IsManager(ctx sdk.Context, addr string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetManagerKey(addr))
}

// GetAllManagers returns all manager addresses
func (k Keeper) GetAllManagers(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.ManagerKeyPrefix)
	defer iterator.Close()

	var managers []string
	for ; iterator.Valid(); iterator.Next() {
		managers = append(managers, types.GetManagerFromKey(iterator.Key()))
	}
	return managers
}

// === Disbursement address ===

// SetDisbursementAddress sets the gas station disbursement account
func (k Keeper) SetDisbursementAddress(ctx sdk.Context, addr sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.DisbursementAddressKey, addr.Bytes())
}

// GetDisbursementAddress returns the gas station disbursement account.
// Falls back to the authority when unset so early gas station forwards
// cannot burn funds.
func (k Keeper) GetDisbursementAddress(ctx sdk.Context) sdk.AccAddress {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.DisbursementAddressKey)
	if bz == nil {
		return sdk.MustAccAddressFromBech32(k.authority)
	}
	return sdk.AccAddress(bz)
}

// === Params ===

// GetParams returns the module parameters
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	mustUnmarshal(bz, &params)
	return params
}

// SetParams sets the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ParamsKey, mustMarshal(&params))
}
