package types

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgServer defines the survey module's Msg service.
type MsgServer interface {
	// SubmitEnvelope delivers one validated cross-chain envelope from the
	// bridge gateway.
	SubmitEnvelope(context.Context, *MsgSubmitEnvelope) (*MsgSubmitEnvelopeResponse, error)
	// SetManager flips an address's manager flag. Authority only.
	SetManager(context.Context, *MsgSetManager) (*MsgSetManagerResponse, error)
	// SetDisbursementAddress points gas station forwarding at a new account. Authority only.
	SetDisbursementAddress(context.Context, *MsgSetDisbursementAddress) (*MsgSetDisbursementAddressResponse, error)
	// RegisterRoute records routing metadata for a destination chain, once. Authority only.
	RegisterRoute(context.Context, *MsgRegisterRoute) (*MsgRegisterRouteResponse, error)
	// UpdateParams replaces the module parameters. Authority only.
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// === MsgSubmitEnvelope ===

// MsgSubmitEnvelope delivers one inbound cross-chain envelope. Funds is the
// native value escrowed with the message (the received amount for create
// instructions); Token is an optional bridged token attachment, which no
// message kind currently accepts with a nonzero amount.
type MsgSubmitEnvelope struct {
	Relayer       string    `json:"relayer"`
	SourceChainID string    `json:"source_chain_id"`
	SourceAddress string    `json:"source_address"`
	Payload       []byte    `json:"payload"`
	Token         *sdk.Coin `json:"token,omitempty"`
	Funds         sdk.Coins `json:"funds"`
}

// MsgSubmitEnvelopeResponse reports the settled envelope's outcome. A
// rejected result (Completed false) means the proof token was consumed but a
// later step failed; RejectReason carries the failing error so the relayer
// can distinguish kinds.
type MsgSubmitEnvelopeResponse struct {
	MessageKind  uint32 `json:"message_kind"`
	Completed    bool   `json:"completed"`
	RejectReason string `json:"reject_reason,omitempty"`
}

// NewMsgSubmitEnvelope creates a new MsgSubmitEnvelope instance
func NewMsgSubmitEnvelope(relayer, sourceChainID, sourceAddress string, payload []byte, token *sdk.Coin, funds sdk.Coins) *MsgSubmitEnvelope {
	return &MsgSubmitEnvelope{
		Relayer:       relayer,
		SourceChainID: sourceChainID,
		SourceAddress: sourceAddress,
		Payload:       payload,
		Token:         token,
		Funds:         funds,
	}
}

// Route returns the message route
func (msg MsgSubmitEnvelope) Route() string { return RouterKey }

// Type returns the message type
func (msg MsgSubmitEnvelope) Type() string { return "submit_envelope" }

// GetSigners returns the signers
func (msg MsgSubmitEnvelope) GetSigners() []sdk.AccAddress {
	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{relayer}
}

// GetSignBytes returns the sign bytes
func (msg MsgSubmitEnvelope) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgSubmitEnvelope) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address: %s", msg.Relayer)
	}
	if msg.SourceChainID == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "source chain id cannot be empty")
	}
	if msg.SourceAddress == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "source address cannot be empty")
	}
	if len(msg.Payload) == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "payload cannot be empty")
	}
	if msg.Token != nil {
		if err := msg.Token.Validate(); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid token attachment: %v", err)
		}
	}
	if err := msg.Funds.Validate(); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid funds: %v", err)
	}
	return nil
}

// Reset implements proto.Message
func (msg *MsgSubmitEnvelope) Reset() { *msg = MsgSubmitEnvelope{} }

// String implements proto.Message
func (msg *MsgSubmitEnvelope) String() string {
	return fmt.Sprintf("MsgSubmitEnvelope{%s %s/%s}", msg.Relayer, msg.SourceChainID, msg.SourceAddress)
}

// ProtoMessage implements proto.Message
func (*MsgSubmitEnvelope) ProtoMessage() {}

// XXX_MessageName returns the TypeURL for this message
func (msg *MsgSubmitEnvelope) XXX_MessageName() string {
	return "qstn.survey.v1.MsgSubmitEnvelope"
}

// === MsgSetManager ===

// MsgSetManager flips the manager flag for an address.
type MsgSetManager struct {
	Authority string `json:"authority"`
	Manager   string `json:"manager"`
	Enabled   bool   `json:"enabled"`
}

// MsgSetManagerResponse is the response for MsgSetManager
type MsgSetManagerResponse struct{}

// NewMsgSetManager creates a new MsgSetManager instance
func NewMsgSetManager(authority, manager string, enabled bool) *MsgSetManager {
	return &MsgSetManager{Authority: authority, Manager: manager, Enabled: enabled}
}

// Route returns the message route
func (msg MsgSetManager) Route() string { return RouterKey }

// Type returns the message type
func (msg MsgSetManager) Type() string { return "set_manager" }

// GetSigners returns the signers
func (msg MsgSetManager) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the sign bytes
func (msg MsgSetManager) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgSetManager) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", msg.Authority)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Manager); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid manager address: %s", msg.Manager)
	}
	return nil
}

// Reset implements proto.Message
func (msg *MsgSetManager) Reset() { *msg = MsgSetManager{} }

// String implements proto.Message
func (msg *MsgSetManager) String() string {
	return fmt.Sprintf("MsgSetManager{%s %t}", msg.Manager, msg.Enabled)
}

// ProtoMessage implements proto.Message
func (*MsgSetManager) ProtoMessage() {}

// XXX_MessageName returns the TypeURL for this message
func (msg *MsgSetManager) XXX_MessageName() string {
	return "qstn.survey.v1.MsgSetManager"
}

// === MsgSetDisbursementAddress ===

// MsgSetDisbursementAddress updates the gas station disbursement account.
type MsgSetDisbursementAddress struct {
	Authority string `json:"authority"`
	Address   string `json:"address"`
}

// MsgSetDisbursementAddressResponse is the response for MsgSetDisbursementAddress
type MsgSetDisbursementAddressResponse struct{}

// NewMsgSetDisbursementAddress creates a new MsgSetDisbursementAddress instance
func NewMsgSetDisbursementAddress(authority, address string) *MsgSetDisbursementAddress {
	return &MsgSetDisbursementAddress{Authority: authority, Address: address}
}

// Route returns the message route
func (msg MsgSetDisbursementAddress) Route() string { return RouterKey }

// Type returns the message type
func (msg MsgSetDisbursementAddress) Type() string { return "set_disbursement_address" }

// GetSigners returns the signers
func (msg MsgSetDisbursementAddress) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the sign bytes
func (msg MsgSetDisbursementAddress) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgSetDisbursementAddress) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", msg.Authority)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid disbursement address: %s", msg.Address)
	}
	return nil
}

// Reset implements proto.Message
func (msg *MsgSetDisbursementAddress) Reset() { *msg = MsgSetDisbursementAddress{} }

// String implements proto.Message
func (msg *MsgSetDisbursementAddress) String() string {
	return fmt.Sprintf("MsgSetDisbursementAddress{%s}", msg.Address)
}

// ProtoMessage implements proto.Message
func (*MsgSetDisbursementAddress) ProtoMessage() {}

// XXX_MessageName returns the TypeURL for this message
func (msg *MsgSetDisbursementAddress) XXX_MessageName() string {
	return "qstn.survey.v1.MsgSetDisbursementAddress"
}

// === MsgRegisterRoute ===

// MsgRegisterRoute records routing metadata for one destination chain.
type MsgRegisterRoute struct {
	Authority     string `json:"authority"`
	ChainName     string `json:"chain_name"`
	RemoteChainID string `json:"remote_chain_id"`
	ChannelID     string `json:"channel_id"`
	RemoteDenom   string `json:"remote_denom"`
}

// MsgRegisterRouteResponse returns the derived local denom.
type MsgRegisterRouteResponse struct {
	LocalDenom string `json:"local_denom"`
}

// NewMsgRegisterRoute creates a new MsgRegisterRoute instance
func NewMsgRegisterRoute(authority, chainName, remoteChainID, channelID, remoteDenom string) *MsgRegisterRoute {
	return &MsgRegisterRoute{
		Authority:     authority,
		ChainName:     chainName,
		RemoteChainID: remoteChainID,
		ChannelID:     channelID,
		RemoteDenom:   remoteDenom,
	}
}

// Route returns the message route
func (msg MsgRegisterRoute) Route() string { return RouterKey }

// Type returns the message type
func (msg MsgRegisterRoute) Type() string { return "register_route" }

// GetSigners returns the signers
func (msg MsgRegisterRoute) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the sign bytes
func (msg MsgRegisterRoute) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgRegisterRoute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", msg.Authority)
	}
	route := NewRemoteRoute(msg.ChainName, msg.RemoteChainID, msg.ChannelID, msg.RemoteDenom)
	return route.Validate()
}

// Reset implements proto.Message
func (msg *MsgRegisterRoute) Reset() { *msg = MsgRegisterRoute{} }

// String implements proto.Message
func (msg *MsgRegisterRoute) String() string {
	return fmt.Sprintf("MsgRegisterRoute{%s %s}", msg.ChainName, msg.ChannelID)
}

// ProtoMessage implements proto.Message
func (*MsgRegisterRoute) ProtoMessage() {}

// XXX_MessageName returns the TypeURL for this message
func (msg *MsgRegisterRoute) XXX_MessageName() string {
	return "qstn.survey.v1.MsgRegisterRoute"
}

// === MsgUpdateParams ===

// MsgUpdateParams replaces the module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams
type MsgUpdateParamsResponse struct{}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route returns the message route
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type returns the message type
func (msg MsgUpdateParams) Type() string { return "update_params" }

// GetSigners returns the signers
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the sign bytes
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", msg.Authority)
	}
	return msg.Params.Validate()
}

// Reset implements proto.Message
func (msg *MsgUpdateParams) Reset() { *msg = MsgUpdateParams{} }

// String implements proto.Message
func (msg *MsgUpdateParams) String() string {
	return fmt.Sprintf("MsgUpdateParams{%s}", msg.Authority)
}

// ProtoMessage implements proto.Message
func (*MsgUpdateParams) ProtoMessage() {}

// XXX_MessageName returns the TypeURL for this message
func (msg *MsgUpdateParams) XXX_MessageName() string {
	return "qstn.survey.v1.MsgUpdateParams"
}
