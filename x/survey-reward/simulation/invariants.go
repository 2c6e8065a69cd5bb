package simulation

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/keeper"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

const (
	InvariantLedgerConsistency     = "ledger-consistency"
	InvariantMembershipConsistency = "membership-consistency"
	InvariantEscrowCoverage        = "escrow-coverage"
	InvariantParamsConsistency     = "params-consistency"
)

// RegisterInvariants registers all survey module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k keeper.Keeper, bk types.BankKeeper) {
	ir.RegisterRoute(types.ModuleName, InvariantLedgerConsistency, LedgerConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, InvariantMembershipConsistency, MembershipConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, InvariantEscrowCoverage, EscrowCoverageInvariant(k, bk))
	ir.RegisterRoute(types.ModuleName, InvariantParamsConsistency, ParamsConsistencyInvariant(k))
}

// AllInvariants runs all invariants for the survey module
func AllInvariants(k keeper.Keeper, bk types.BankKeeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := LedgerConsistencyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = MembershipConsistencyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = EscrowCoverageInvariant(k, bk)(ctx)
		if stop {
			return res, stop
		}

		return ParamsConsistencyInvariant(k)(ctx)
	}
}

// LedgerConsistencyInvariant checks the structural invariants of every
// survey record: valid fields, counter within limit, retrievability by id.
func LedgerConsistencyInvariant(k keeper.Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		for _, survey := range k.GetAllSurveys(ctx) {
			if err := survey.Validate(); err != nil {
				broken = true
				msg += fmt.Sprintf("survey %s fails validation: %v\n", survey.ID, err)
			}
			if survey.ParticipantsRewarded > survey.ParticipantsLimit {
				broken = true
				msg += fmt.Sprintf("survey %s rewarded %d participants beyond limit %d\n",
					survey.ID, survey.ParticipantsRewarded, survey.ParticipantsLimit)
			}

			retrieved, found := k.GetSurvey(ctx, survey.ID)
			if !found {
				broken = true
				msg += fmt.Sprintf("survey %s listed but not retrievable\n", survey.ID)
				continue
			}
			if retrieved.ID != survey.ID || retrieved.Creator != survey.Creator {
				broken = true
				msg += fmt.Sprintf("survey %s record mismatch on direct lookup\n", survey.ID)
			}
		}

		return sdk.FormatInvariant(types.ModuleName, InvariantLedgerConsistency, msg), broken
	}
}

// MembershipConsistencyInvariant checks that every survey's rewarded counter
// equals its stored payout markers and that no marker references an unknown
// survey.
func MembershipConsistencyInvariant(k keeper.Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		for _, survey := range k.GetAllSurveys(ctx) {
			count := k.CountRewardMemberships(ctx, survey.ID)
			if count != survey.ParticipantsRewarded {
				broken = true
				msg += fmt.Sprintf("survey %s counter records %d rewards but %d markers exist\n",
					survey.ID, survey.ParticipantsRewarded, count)
			}
		}

		k.IterateRewardMemberships(ctx, func(m types.RewardMembership) bool {
			if !k.HasSurvey(ctx, m.SurveyID) {
				broken = true
				msg += fmt.Sprintf("payout marker references unknown survey %s\n", m.SurveyID)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, InvariantMembershipConsistency, msg), broken
	}
}

// EscrowCoverageInvariant checks that the module account holds at least the
// outstanding reward obligations of every active survey.
func EscrowCoverageInvariant(k keeper.Keeper, bk types.BankKeeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
		owed := sdk.NewCoins()
		for _, survey := range k.GetAllSurveys(ctx) {
			if survey.Canceled || survey.Finished() {
				continue
			}
			remaining := survey.ParticipantsLimit - survey.ParticipantsRewarded
			owed = owed.Add(sdk.NewCoin(survey.RewardDenom, survey.RewardAmount.MulRaw(int64(remaining))))
		}

		for _, coin := range owed {
			balance := bk.GetBalance(ctx, moduleAddr, coin.Denom)
			if balance.Amount.LT(coin.Amount) {
				broken = true
				msg += fmt.Sprintf("module holds %s but owes %s\n", balance, coin)
			}
		}

		return sdk.FormatInvariant(types.ModuleName, InvariantEscrowCoverage, msg), broken
	}
}

// ParamsConsistencyInvariant checks module parameters consistency
func ParamsConsistencyInvariant(k keeper.Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		if err := k.GetParams(ctx).Validate(); err != nil {
			broken = true
			msg += fmt.Sprintf("parameter validation failed: %v\n", err)
		}

		return sdk.FormatInvariant(types.ModuleName, InvariantParamsConsistency, msg), broken
	}
}
