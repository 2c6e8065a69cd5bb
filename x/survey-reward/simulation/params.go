package simulation

import (
	"fmt"
	"math/rand"

	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

const (
	keyTrustedChainID = "TrustedChainID"
)

// ParamChanges defines the parameters that can be modified by governance
// proposals during the simulation
func ParamChanges(r *rand.Rand) []simtypes.LegacyParamChange {
	return []simtypes.LegacyParamChange{
		simulation.NewSimLegacyParamChange(types.ModuleName, keyTrustedChainID,
			func(r *rand.Rand) string {
				return fmt.Sprintf(`%q`, GenTrustedChainID(r))
			},
		),
	}
}

// GenTrustedChainID returns a randomized trusted origin chain id for simulation
func GenTrustedChainID(r *rand.Rand) string {
	chains := []string{"agoric-3", "ethereum", "polygon", "avalanche"}
	return chains[r.Intn(len(chains))]
}

// RandomizedParams generates random parameters for the survey module
func RandomizedParams(r *rand.Rand) types.Params {
	// the trusted sender and gateway stay unset so the randomized chain does
	// not accept envelopes from simulated accounts
	return types.Params{
		TrustedChainID: GenTrustedChainID(r),
	}
}
