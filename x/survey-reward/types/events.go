package types

// Event types for the survey module
const (
	EventTypeSurveyCreated     = "survey_created"
	EventTypeSurveyCanceled    = "survey_canceled"
	EventTypeRewardPaid        = "reward_paid"
	EventTypeSurveyFinished    = "survey_finished"
	EventTypeEnvelopeCompleted = "envelope_completed"
	EventTypeEnvelopeRejected  = "envelope_rejected" // proof consumed, business step failed
	EventTypeGasStation        = "gas_station_forwarded"
	EventTypeRouteRegistered   = "route_registered"
	EventTypeManagerUpdated    = "manager_updated"
	EventTypeDisbursementSet   = "disbursement_address_set"
	EventTypeParamsUpdated     = "params_updated"
)

// Event attribute keys
const (
	AttributeKeySurveyID             = "survey_id"
	AttributeKeyCreator              = "creator"
	AttributeKeyParticipant          = "participant"
	AttributeKeyParticipantsLimit    = "participants_limit"
	AttributeKeyParticipantsRewarded = "participants_rewarded"
	AttributeKeyRewardAmount         = "reward_amount"
	AttributeKeyRefundAmount         = "refund_amount"
	AttributeKeyDenom                = "denom"
	AttributeKeyContentHash          = "content_hash"
	AttributeKeyMessageKind          = "message_kind"
	AttributeKeySourceChain          = "source_chain"
	AttributeKeyReason               = "reason"
	AttributeKeySigner               = "signer"
	AttributeKeyManager              = "manager"
	AttributeKeyEnabled              = "enabled"
	AttributeKeyAddress              = "address"
	AttributeKeyAmount               = "amount"
	AttributeKeyChainName            = "chain_name"
	AttributeKeyLocalDenom           = "local_denom"
	AttributeKeyChannelID            = "channel_id"
	AttributeKeyAuthority            = "authority"
)
