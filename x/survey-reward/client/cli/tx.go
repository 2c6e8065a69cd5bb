package cli

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

const (
	flagToken = "token"
	flagFunds = "funds"
)

// GetTxCmd returns the transaction commands for the survey module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Survey transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetCmdSubmitEnvelope(),
		GetCmdSetManager(),
		GetCmdSetDisbursementAddress(),
		GetCmdRegisterRoute(),
		GetCmdUpdateParams(),
	)

	return cmd
}

// parseEnvelopePayload accepts either raw envelope JSON or its hex encoding,
// with or without a 0x prefix.
func parseEnvelopePayload(arg string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		return []byte(arg), nil
	}
	return hex.DecodeString(strings.TrimPrefix(arg, "0x"))
}

// GetCmdSubmitEnvelope implements the submit envelope command
func GetCmdSubmitEnvelope() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-envelope [source-chain-id] [source-address] [payload]",
		Short: "Deliver a cross-chain survey envelope",
		Long: `Deliver a cross-chain survey envelope.
payload is the envelope JSON, raw or hex encoded.
Use --funds to escrow native value with a create instruction.
The signer must be the gateway account registered in module params.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			payload, err := parseEnvelopePayload(args[2])
			if err != nil {
				return err
			}

			var token *sdk.Coin
			tokenStr, err := cmd.Flags().GetString(flagToken)
			if err != nil {
				return err
			}
			if tokenStr != "" {
				coin, err := sdk.ParseCoinNormalized(tokenStr)
				if err != nil {
					return err
				}
				token = &coin
			}

			var funds sdk.Coins
			fundsStr, err := cmd.Flags().GetString(flagFunds)
			if err != nil {
				return err
			}
			if fundsStr != "" {
				funds, err = sdk.ParseCoinsNormalized(fundsStr)
				if err != nil {
					return err
				}
			}

			msg := types.NewMsgSubmitEnvelope(
				clientCtx.GetFromAddress().String(), args[0], args[1], payload, token, funds)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagToken, "", "bridged token attachment (e.g. 100uqstn)")
	cmd.Flags().String(flagFunds, "", "native value escrowed with the envelope (e.g. 1000uqstn)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdSetManager implements the set manager command
func GetCmdSetManager() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-manager [address] [enabled]",
		Short: "Enable or disable a proof signer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			enabled := args[1] == "true"

			msg := types.NewMsgSetManager(clientCtx.GetFromAddress().String(), args[0], enabled)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdSetDisbursementAddress implements the set disbursement address command
func GetCmdSetDisbursementAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-disbursement-address [address]",
		Short: "Point gas station forwarding at a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetDisbursementAddress(clientCtx.GetFromAddress().String(), args[0])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdRegisterRoute implements the register route command
func GetCmdRegisterRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-route [chain-name] [remote-chain-id] [channel-id] [remote-denom]",
		Short: "Register routing metadata for a destination chain",
		Long: `Register routing metadata for a destination chain.
The local IBC voucher denom is derived from the channel and remote denom.
Routes are write-once; registering the same chain twice fails.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRegisterRoute(
				clientCtx.GetFromAddress().String(), args[0], args[1], args[2], args[3])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdUpdateParams implements the update params command
func GetCmdUpdateParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-params [trusted-chain-id] [trusted-sender] [gateway-contract]",
		Short: "Replace the survey module parameters",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			params := types.Params{
				TrustedChainID:  args[0],
				TrustedSender:   args[1],
				GatewayContract: args[2],
			}

			msg := types.NewMsgUpdateParams(clientCtx.GetFromAddress().String(), params)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
