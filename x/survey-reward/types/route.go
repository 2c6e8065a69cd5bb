package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	ibctransfertypes "github.com/cosmos/ibc-go/v7/modules/apps/transfer/types"
)

// transferPort is the IBC port routes are derived against.
const transferPort = "transfer"

// NewRemoteRoute builds the route for one destination chain. The local denom
// is the IBC hash denom of the remote denom received over the route's
// channel, which is how the escrowed voucher appears in local balances.
func NewRemoteRoute(chainName, remoteChainID, channelID, remoteDenom string) RemoteRoute {
	trace := ibctransfertypes.ParseDenomTrace(
		fmt.Sprintf("%s/%s/%s", transferPort, channelID, remoteDenom),
	)
	return RemoteRoute{
		ChainName:     chainName,
		LocalDenom:    trace.IBCDenom(),
		RemoteChainID: remoteChainID,
		ChannelID:     channelID,
		RemoteDenom:   remoteDenom,
	}
}

// Validate checks the route's structural invariants.
func (r RemoteRoute) Validate() error {
	if r.ChainName == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "route chain name cannot be empty")
	}
	if r.RemoteChainID == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "route remote chain id cannot be empty")
	}
	if err := ibctransfertypes.ValidateIBCDenom(r.LocalDenom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid local denom: %s", r.LocalDenom)
	}
	if !channeltypesIsValidID(r.ChannelID) {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid channel id: %s", r.ChannelID)
	}
	if err := sdk.ValidateDenom(r.RemoteDenom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid remote denom: %s", r.RemoteDenom)
	}
	return nil
}

// channeltypesIsValidID keeps the channel id check local; transfer channels
// follow the "channel-N" identifier format.
func channeltypesIsValidID(channelID string) bool {
	if len(channelID) < 9 || channelID[:8] != "channel-" {
		return false
	}
	for _, c := range channelID[8:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// OutboundMemo is the shape the bridge counterpart consumes when this chain
// emits a transfer instruction back across the bridge.
type OutboundMemo struct {
	DestinationChain   string    `json:"destination_chain"`
	DestinationAddress string    `json:"destination_address"`
	Payload            []byte    `json:"payload"`
	MessageKind        uint32    `json:"message_kind"`
	Fee                *sdk.Coin `json:"fee,omitempty"`
}

// Validate checks the memo before encoding.
func (m OutboundMemo) Validate() error {
	if m.DestinationChain == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "destination chain cannot be empty")
	}
	if m.DestinationAddress == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "destination address cannot be empty")
	}
	if m.Fee != nil {
		if err := m.Fee.Validate(); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid memo fee: %v", err)
		}
	}
	return nil
}
