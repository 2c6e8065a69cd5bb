package survey

import (
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/keeper"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// InitGenesis initializes the survey module's state from a provided genesis state
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if genState.Params != nil {
		k.SetParams(ctx, *genState.Params)
	}

	for _, survey := range genState.Surveys {
		k.SetSurvey(ctx, *survey)
	}

	for _, m := range genState.RewardMemberships {
		k.SetRewardMembership(ctx, m.SurveyID, m.Participant)
	}

	for _, tok := range genState.UsedTokens {
		raw, err := hex.DecodeString(tok)
		if err != nil {
			panic(fmt.Errorf("failed to decode used token during genesis initialization: %w", err))
		}
		k.MarkTokenUsed(ctx, raw)
	}

	for _, mgr := range genState.Managers {
		k.SetManager(ctx, mgr, true)
	}
	// the authority can always sign proofs until explicit managers exist
	if len(genState.Managers) == 0 {
		k.SetManager(ctx, k.GetAuthority(), true)
	}

	if genState.DisbursementAddress != "" {
		k.SetDisbursementAddress(ctx, sdk.MustAccAddressFromBech32(genState.DisbursementAddress))
	}

	for _, route := range genState.Routes {
		k.SetRoute(ctx, *route)
	}
}

// ExportGenesis returns the survey module's exported genesis
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesisState()

	params := k.GetParams(ctx)
	genesis.Params = &params

	surveys := k.GetAllSurveys(ctx)
	surveyPtrs := make([]*types.SurveyRecord, len(surveys))
	for i := range surveys {
		surveyPtrs[i] = &surveys[i]
	}
	genesis.Surveys = surveyPtrs

	genesis.RewardMemberships = k.GetAllRewardMemberships(ctx)

	k.IterateUsedTokens(ctx, func(token []byte) bool {
		genesis.UsedTokens = append(genesis.UsedTokens, hex.EncodeToString(token))
		return false
	})

	genesis.Managers = k.GetAllManagers(ctx)
	genesis.DisbursementAddress = k.GetDisbursementAddress(ctx).String()

	routes := k.GetAllRoutes(ctx)
	routePtrs := make([]*types.RemoteRoute, len(routes))
	for i := range routes {
		routePtrs[i] = &routes[i]
	}
	genesis.Routes = routePtrs

	return genesis
}
