package types

const (
	// ModuleName defines the module name
	ModuleName = "survey"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_survey"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MaxSurveyIDLength bounds survey ids so membership keys stay unambiguous
	MaxSurveyIDLength = 128
)

var (
	// SurveyKeyPrefix defines the prefix for survey records
	SurveyKeyPrefix = []byte{0x01}

	// RewardMembershipKeyPrefix defines the prefix for (survey, participant) payout markers
	RewardMembershipKeyPrefix = []byte{0x02}

	// UsedTokenKeyPrefix defines the prefix for consumed proof tokens
	UsedTokenKeyPrefix = []byte{0x03}

	// ManagerKeyPrefix defines the prefix for authorized proof signers
	ManagerKeyPrefix = []byte{0x04}

	// RouteKeyPrefix defines the prefix for remote route metadata
	RouteKeyPrefix = []byte{0x05}

	// DisbursementAddressKey stores the gas station disbursement address
	DisbursementAddressKey = []byte{0x06}

	// ParamsKey stores the module parameters
	ParamsKey = []byte{0x07}
)

// GetSurveyKey returns the store key for a survey record
func GetSurveyKey(surveyID string) []byte {
	return append(SurveyKeyPrefix, []byte(surveyID)...)
}

// GetSurveyIDFromKey returns the survey id from a survey store key
func GetSurveyIDFromKey(key []byte) string {
	return string(key[len(SurveyKeyPrefix):])
}

// GetRewardMembershipKey returns the store key marking a participant as paid
// for a survey. The survey id is length-prefixed so that (id, participant)
// pairs cannot collide.
func GetRewardMembershipKey(surveyID, participant string) []byte {
	key := append(RewardMembershipKeyPrefix, byte(len(surveyID)))
	key = append(key, []byte(surveyID)...)
	return append(key, []byte(participant)...)
}

// GetRewardMembershipPrefix returns the iteration prefix for all payout
// markers of one survey.
func GetRewardMembershipPrefix(surveyID string) []byte {
	key := append(RewardMembershipKeyPrefix, byte(len(surveyID)))
	return append(key, []byte(surveyID)...)
}

// SplitRewardMembershipKey returns the survey id and participant encoded in
// a membership store key.
func SplitRewardMembershipKey(key []byte) (surveyID, participant string) {
	body := key[len(RewardMembershipKeyPrefix):]
	idLen := int(body[0])
	return string(body[1 : 1+idLen]), string(body[1+idLen:])
}

// GetUsedTokenKey returns the store key for a consumed proof token
func GetUsedTokenKey(token []byte) []byte {
	return append(UsedTokenKeyPrefix, token...)
}

// GetTokenFromUsedTokenKey returns the token bytes from a used-token store key
func GetTokenFromUsedTokenKey(key []byte) []byte {
	return key[len(UsedTokenKeyPrefix):]
}

// GetManagerKey returns the store key for a manager flag
func GetManagerKey(addr string) []byte {
	return append(ManagerKeyPrefix, []byte(addr)...)
}

// GetManagerFromKey returns the manager address from a manager store key
func GetManagerFromKey(key []byte) string {
	return string(key[len(ManagerKeyPrefix):])
}

// GetRouteKey returns the store key for a remote route by destination chain name
func GetRouteKey(chainName string) []byte {
	return append(RouteKeyPrefix, []byte(chainName)...)
}

// GetChainNameFromRouteKey returns the chain name from a route store key
func GetChainNameFromRouteKey(key []byte) string {
	return string(key[len(RouteKeyPrefix):])
}
