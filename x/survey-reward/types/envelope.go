package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Envelope message kinds. The discriminant leads every payload.
const (
	MsgIDCreateSurvey uint32 = 0
	MsgIDCancelSurvey uint32 = 1
	MsgIDPayRewards   uint32 = 2
)

// MessageKindName returns a human readable label for event attributes.
func MessageKindName(msgID uint32) string {
	switch msgID {
	case MsgIDCreateSurvey:
		return "create_survey"
	case MsgIDCancelSurvey:
		return "cancel_survey"
	case MsgIDPayRewards:
		return "pay_rewards"
	default:
		return "unknown"
	}
}

// EnvelopeResult is the settled outcome of one envelope. Completed false
// means proof validation began (the token is spent) but a later step failed;
// RejectReason carries that failure for the relayer.
type EnvelopeResult struct {
	MessageKind  uint32 `json:"message_kind"`
	Completed    bool   `json:"completed"`
	RejectReason string `json:"reject_reason,omitempty"`
}

// payloadHeader is decoded first to read the leading discriminant.
type payloadHeader struct {
	MsgID *uint32 `json:"msg_id"`
}

// ProofFields is the authorization envelope shared by every payload kind.
type ProofFields struct {
	Signature []byte `json:"signature"`
	Token     []byte `json:"token"`
	Expiry    uint64 `json:"expiry"`
}

// Validate checks the structural shape of the proof fields. Nothing here
// touches state; token reuse and expiry are checked by the guard.
func (p ProofFields) Validate() error {
	if len(p.Token) != TokenLength {
		return errorsmod.Wrapf(ErrInvalidEnvelope, "proof token must be %d bytes, got %d", TokenLength, len(p.Token))
	}
	if len(p.Signature) != SignatureLength {
		return errorsmod.Wrapf(ErrInvalidEnvelope, "signature must be %d bytes, got %d", SignatureLength, len(p.Signature))
	}
	return nil
}

// CreateSurveyPayload carries a create-survey instruction.
type CreateSurveyPayload struct {
	MsgID uint32 `json:"msg_id"`
	ProofFields
	Creator           string      `json:"creator"`
	SurveyID          string      `json:"survey_id"`
	ParticipantsLimit uint64      `json:"participants_limit"`
	RewardAmount      sdkmath.Int `json:"reward_amount"`
	ContentHash       []byte      `json:"content_hash"`
	GasStationAmount  sdkmath.Int `json:"gas_station_amount"`
}

// Validate checks decoded fields before any proof validation.
func (p CreateSurveyPayload) Validate() error {
	if err := p.ProofFields.Validate(); err != nil {
		return err
	}
	if err := ValidateSurveyID(p.SurveyID); err != nil {
		return errorsmod.Wrap(ErrInvalidEnvelope, err.Error())
	}
	if _, err := sdk.AccAddressFromBech32(p.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidEnvelope, "invalid creator address: %s", p.Creator)
	}
	if p.ParticipantsLimit == 0 {
		return errorsmod.Wrap(ErrInvalidEnvelope, "participants limit must be greater than 0")
	}
	if p.RewardAmount.IsNil() || !p.RewardAmount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidEnvelope, "reward amount must be positive")
	}
	if len(p.ContentHash) != ContentHashLength {
		return errorsmod.Wrapf(ErrInvalidEnvelope, "content hash must be %d bytes, got %d", ContentHashLength, len(p.ContentHash))
	}
	if p.GasStationAmount.IsNil() || p.GasStationAmount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidEnvelope, "gas station amount cannot be negative")
	}
	return nil
}

// CancelSurveyPayload carries a cancel-survey instruction.
type CancelSurveyPayload struct {
	MsgID uint32 `json:"msg_id"`
	ProofFields
	SurveyID string `json:"survey_id"`
}

// Validate checks decoded fields before any proof validation.
func (p CancelSurveyPayload) Validate() error {
	if err := p.ProofFields.Validate(); err != nil {
		return err
	}
	if err := ValidateSurveyID(p.SurveyID); err != nil {
		return errorsmod.Wrap(ErrInvalidEnvelope, err.Error())
	}
	return nil
}

// PayRewardsPayload carries a batch of (survey, participant) payout
// instructions authorized by a single batch-level proof.
type PayRewardsPayload struct {
	MsgID uint32 `json:"msg_id"`
	ProofFields
	SurveyIDs    []string `json:"survey_ids"`
	Participants []string `json:"participants"`
}

// Validate checks decoded fields before any proof validation. A length
// mismatch must short-circuit here, before the proof token is consumed.
func (p PayRewardsPayload) Validate() error {
	if err := p.ProofFields.Validate(); err != nil {
		return err
	}
	if len(p.SurveyIDs) != len(p.Participants) {
		return errorsmod.Wrapf(ErrArrayLengthMismatch,
			"%d survey ids, %d participants", len(p.SurveyIDs), len(p.Participants))
	}
	if len(p.SurveyIDs) == 0 {
		return errorsmod.Wrap(ErrInvalidEnvelope, "empty payout batch")
	}
	for _, id := range p.SurveyIDs {
		if err := ValidateSurveyID(id); err != nil {
			return errorsmod.Wrap(ErrInvalidEnvelope, err.Error())
		}
	}
	for _, addr := range p.Participants {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return errorsmod.Wrapf(ErrInvalidEnvelope, "invalid participant address: %s", addr)
		}
	}
	return nil
}

// DecodeEnvelopePayload reads the leading discriminant and decodes the
// matching payload kind. The returned value is one of *CreateSurveyPayload,
// *CancelSurveyPayload or *PayRewardsPayload, already structurally
// validated.
func DecodeEnvelopePayload(bz []byte) (uint32, interface{}, error) {
	var header payloadHeader
	if err := json.Unmarshal(bz, &header); err != nil {
		return 0, nil, errorsmod.Wrapf(ErrInvalidEnvelope, "payload decode: %v", err)
	}
	if header.MsgID == nil {
		return 0, nil, errorsmod.Wrap(ErrWrongMsgID, "payload missing msg_id")
	}

	switch *header.MsgID {
	case MsgIDCreateSurvey:
		var p CreateSurveyPayload
		if err := json.Unmarshal(bz, &p); err != nil {
			return *header.MsgID, nil, errorsmod.Wrapf(ErrInvalidEnvelope, "create payload decode: %v", err)
		}
		if err := p.Validate(); err != nil {
			return *header.MsgID, nil, err
		}
		return *header.MsgID, &p, nil
	case MsgIDCancelSurvey:
		var p CancelSurveyPayload
		if err := json.Unmarshal(bz, &p); err != nil {
			return *header.MsgID, nil, errorsmod.Wrapf(ErrInvalidEnvelope, "cancel payload decode: %v", err)
		}
		if err := p.Validate(); err != nil {
			return *header.MsgID, nil, err
		}
		return *header.MsgID, &p, nil
	case MsgIDPayRewards:
		var p PayRewardsPayload
		if err := json.Unmarshal(bz, &p); err != nil {
			return *header.MsgID, nil, errorsmod.Wrapf(ErrInvalidEnvelope, "pay rewards payload decode: %v", err)
		}
		if err := p.Validate(); err != nil {
			return *header.MsgID, nil, err
		}
		return *header.MsgID, &p, nil
	default:
		return *header.MsgID, nil, errorsmod.Wrapf(ErrWrongMsgID, "msg_id %d", *header.MsgID)
	}
}
