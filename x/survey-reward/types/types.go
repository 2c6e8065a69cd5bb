package types

import (
	"encoding/hex"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// SurveyRecord is the ledger entry for one survey. ParticipantsLimit,
// RewardAmount, ContentHash and RewardDenom are fixed at creation;
// ParticipantsRewarded only grows and Canceled only flips one way.
type SurveyRecord struct {
	ID                   string      `json:"id"`
	Creator              string      `json:"creator"`
	ParticipantsLimit    uint64      `json:"participants_limit"`
	RewardAmount         sdkmath.Int `json:"reward_amount"`
	ParticipantsRewarded uint64      `json:"participants_rewarded"`
	ContentHash          []byte      `json:"content_hash"`
	RewardDenom          string      `json:"reward_denom"`
	Canceled             bool        `json:"canceled"`
}

// FundingRequired returns participantsLimit * rewardAmount, the amount that
// must be escrowed at creation (gas station excluded).
func (s SurveyRecord) FundingRequired() sdkmath.Int {
	return s.RewardAmount.MulRaw(int64(s.ParticipantsLimit))
}

// Finished reports whether every participant slot has been rewarded.
func (s SurveyRecord) Finished() bool {
	return s.ParticipantsRewarded >= s.ParticipantsLimit
}

// Validate checks the record's structural invariants.
func (s SurveyRecord) Validate() error {
	if err := ValidateSurveyID(s.ID); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(s.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", s.Creator)
	}
	if s.ParticipantsLimit == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "participants limit must be greater than 0")
	}
	if s.RewardAmount.IsNil() || !s.RewardAmount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "reward amount must be positive")
	}
	if s.ParticipantsRewarded > s.ParticipantsLimit {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest,
			"participants rewarded %d exceeds limit %d", s.ParticipantsRewarded, s.ParticipantsLimit)
	}
	if len(s.ContentHash) != ContentHashLength {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest,
			"content hash must be %d bytes, got %d", ContentHashLength, len(s.ContentHash))
	}
	if err := sdk.ValidateDenom(s.RewardDenom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid reward denom: %s", s.RewardDenom)
	}
	return nil
}

// ValidateSurveyID checks a survey id for use as a store key component.
func ValidateSurveyID(id string) error {
	if id == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "survey id cannot be empty")
	}
	if len(id) > MaxSurveyIDLength {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest,
			"survey id exceeds %d bytes", MaxSurveyIDLength)
	}
	return nil
}

// RewardMembership records that a participant has been paid for a survey.
// Stored as a key-only marker; the struct form is used for genesis and queries.
type RewardMembership struct {
	SurveyID    string `json:"survey_id"`
	Participant string `json:"participant"`
}

// RemoteRoute holds the per-destination-chain metadata needed to address
// outbound transfers. Computed once at registration and immutable after.
type RemoteRoute struct {
	ChainName     string `json:"chain_name"`
	LocalDenom    string `json:"local_denom"`
	RemoteChainID string `json:"remote_chain_id"`
	ChannelID     string `json:"channel_id"`
	RemoteDenom   string `json:"remote_denom"`
}

// Params holds the trusted bridge origin and the local gateway account
// allowed to deliver envelopes.
type Params struct {
	TrustedChainID  string `json:"trusted_chain_id"`
	TrustedSender   string `json:"trusted_sender"`
	GatewayContract string `json:"gateway_contract"`
}

// DefaultParams returns default parameters. The trusted origin must be set
// before the module accepts envelopes, so defaults are intentionally empty.
func DefaultParams() Params {
	return Params{}
}

// Validate validates the parameters.
func (p Params) Validate() error {
	if p.GatewayContract != "" {
		if _, err := sdk.AccAddressFromBech32(p.GatewayContract); err != nil {
			return errorsmod.Wrapf(ErrInvalidParams, "invalid gateway contract address: %s", p.GatewayContract)
		}
	}
	if p.TrustedChainID == "" && p.TrustedSender != "" {
		return errorsmod.Wrap(ErrInvalidParams, "trusted sender set without trusted chain id")
	}
	return nil
}

// GenesisState defines the survey module's genesis state.
type GenesisState struct {
	Params              *Params            `json:"params,omitempty"`
	Surveys             []*SurveyRecord    `json:"surveys"`
	RewardMemberships   []RewardMembership `json:"reward_memberships"`
	UsedTokens          []string           `json:"used_tokens"` // hex encoded
	Managers            []string           `json:"managers"`
	DisbursementAddress string             `json:"disbursement_address,omitempty"`
	Routes              []*RemoteRoute     `json:"routes"`
}

// NewGenesisState creates a new GenesisState instance
func NewGenesisState(params Params, surveys []*SurveyRecord, managers []string) *GenesisState {
	return &GenesisState{
		Params:   &params,
		Surveys:  surveys,
		Managers: managers,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	params := DefaultParams()
	return &GenesisState{
		Params:  &params,
		Surveys: []*SurveyRecord{},
		Routes:  []*RemoteRoute{},
	}
}

// ValidateGenesis validates the genesis state
func ValidateGenesis(data GenesisState) error {
	if data.Params != nil {
		if err := data.Params.Validate(); err != nil {
			return err
		}
	}

	seenSurveys := make(map[string]*SurveyRecord, len(data.Surveys))
	for _, survey := range data.Surveys {
		if survey == nil {
			return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "survey record cannot be nil")
		}
		if err := survey.Validate(); err != nil {
			return err
		}
		if seenSurveys[survey.ID] != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate survey id: %s", survey.ID)
		}
		seenSurveys[survey.ID] = survey
	}

	rewardedCounts := make(map[string]uint64)
	seenMemberships := make(map[string]bool, len(data.RewardMemberships))
	for _, m := range data.RewardMemberships {
		survey := seenSurveys[m.SurveyID]
		if survey == nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest,
				"reward membership references unknown survey: %s", m.SurveyID)
		}
		if _, err := sdk.AccAddressFromBech32(m.Participant); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid participant address: %s", m.Participant)
		}
		pairKey := fmt.Sprintf("%s/%s", m.SurveyID, m.Participant)
		if seenMemberships[pairKey] {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest,
				"duplicate reward membership: %s", pairKey)
		}
		seenMemberships[pairKey] = true
		rewardedCounts[m.SurveyID]++
	}
	for id, count := range rewardedCounts {
		if count != seenSurveys[id].ParticipantsRewarded {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest,
				"survey %s records %d rewarded participants but has %d memberships",
				id, seenSurveys[id].ParticipantsRewarded, count)
		}
	}

	seenTokens := make(map[string]bool, len(data.UsedTokens))
	for _, tok := range data.UsedTokens {
		raw, err := hex.DecodeString(tok)
		if err != nil || len(raw) != TokenLength {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid used token: %s", tok)
		}
		if seenTokens[tok] {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate used token: %s", tok)
		}
		seenTokens[tok] = true
	}

	seenManagers := make(map[string]bool, len(data.Managers))
	for _, mgr := range data.Managers {
		if _, err := sdk.AccAddressFromBech32(mgr); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid manager address: %s", mgr)
		}
		if seenManagers[mgr] {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate manager: %s", mgr)
		}
		seenManagers[mgr] = true
	}

	if data.DisbursementAddress != "" {
		if _, err := sdk.AccAddressFromBech32(data.DisbursementAddress); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress,
				"invalid disbursement address: %s", data.DisbursementAddress)
		}
	}

	seenRoutes := make(map[string]bool, len(data.Routes))
	for _, route := range data.Routes {
		if route == nil {
			return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "route cannot be nil")
		}
		if err := route.Validate(); err != nil {
			return err
		}
		if seenRoutes[route.ChainName] {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate route for chain: %s", route.ChainName)
		}
		seenRoutes[route.ChainName] = true
	}

	return nil
}
