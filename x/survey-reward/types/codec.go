package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the survey module's message types with
// the provided legacy amino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitEnvelope{}, "survey/SubmitEnvelope", nil)
	cdc.RegisterConcrete(&MsgSetManager{}, "survey/SetManager", nil)
	cdc.RegisterConcrete(&MsgSetDisbursementAddress{}, "survey/SetDisbursementAddress", nil)
	cdc.RegisterConcrete(&MsgRegisterRoute{}, "survey/RegisterRoute", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "survey/UpdateParams", nil)
}

// RegisterInterfaces registers the survey module's message types with the
// interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitEnvelope{},
		&MsgSetManager{},
		&MsgSetDisbursementAddress{},
		&MsgRegisterRoute{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc is used by message GetSignBytes implementations
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
