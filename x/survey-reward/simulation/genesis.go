package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

const (
	NumInitialSurveys = "num_initial_surveys"
	NumManagers       = "num_managers"
)

// RandomizedGenState generates a random GenesisState for the survey module
func RandomizedGenState(simState *module.SimulationState) {
	var numSurveys int
	simState.AppParams.GetOrGenerate(
		simState.Cdc, NumInitialSurveys, &numSurveys, simState.Rand,
		func(r *rand.Rand) { numSurveys = r.Intn(11) },
	)

	var numManagers int
	simState.AppParams.GetOrGenerate(
		simState.Cdc, NumManagers, &numManagers, simState.Rand,
		func(r *rand.Rand) { numManagers = r.Intn(3) + 1 },
	)

	surveys := RandomGenesisSurveys(simState.Rand, simState.Accounts, numSurveys)
	managers := randomManagers(simState.Rand, simState.Accounts, numManagers)

	params := types.DefaultParams()

	surveyGenesis := types.GenesisState{
		Params:   &params,
		Surveys:  surveys,
		Managers: managers,
		Routes:   []*types.RemoteRoute{},
	}

	if err := types.ValidateGenesis(surveyGenesis); err != nil {
		panic(fmt.Sprintf("invalid genesis state: %v", err))
	}

	bz, err := json.MarshalIndent(&surveyGenesis, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated survey genesis:\n%s\n", bz)

	simState.GenState[types.ModuleName] = bz
}

// RandomGenesisSurveys creates random survey records for genesis
func RandomGenesisSurveys(r *rand.Rand, accounts []simtypes.Account, numSurveys int) []*types.SurveyRecord {
	if numSurveys == 0 || len(accounts) == 0 {
		return []*types.SurveyRecord{}
	}

	surveys := make([]*types.SurveyRecord, 0, numSurveys)
	for i := 0; i < numSurveys; i++ {
		creator := accounts[r.Intn(len(accounts))]

		hash := make([]byte, types.ContentHashLength)
		r.Read(hash)

		limit := uint64(r.Intn(50) + 1)
		surveys = append(surveys, &types.SurveyRecord{
			ID:                   fmt.Sprintf("survey-%d", i),
			Creator:              creator.Address.String(),
			ParticipantsLimit:    limit,
			RewardAmount:         sdkmath.NewInt(int64(r.Intn(1000000) + 1000)),
			ParticipantsRewarded: 0,
			ContentHash:          hash,
			RewardDenom:          types.BaseDenom,
			Canceled:             r.Intn(10) == 0,
		})
	}
	return surveys
}

func randomManagers(r *rand.Rand, accounts []simtypes.Account, numManagers int) []string {
	if len(accounts) == 0 {
		return nil
	}
	if numManagers > len(accounts) {
		numManagers = len(accounts)
	}

	seen := make(map[string]bool, numManagers)
	managers := make([]string, 0, numManagers)
	for len(managers) < numManagers {
		addr := accounts[r.Intn(len(accounts))].Address.String()
		if seen[addr] {
			continue
		}
		seen[addr] = true
		managers = append(managers, addr)
	}
	return managers
}
