package cli

import (
	"context"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// GetQueryCmd returns the query commands for the survey module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Survey query subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetCmdQuerySurvey(),
		GetCmdQuerySurveys(),
		GetCmdQueryRewardMembership(),
		GetCmdQueryRoute(),
		GetCmdQueryManagers(),
		GetCmdQueryParams(),
		GetCmdQueryDisbursementAddress(),
	)

	return cmd
}

// GetCmdQuerySurvey implements the query survey command
func GetCmdQuerySurvey() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survey [survey-id]",
		Short: "Query one survey by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QuerySurveyRequest{SurveyID: args[0]}
			res, err := queryClient.Survey(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySurveys implements the query surveys command
func GetCmdQuerySurveys() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surveys",
		Short: "Query all surveys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QuerySurveysRequest{Pagination: pageReq}
			res, err := queryClient.Surveys(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "surveys")
	return cmd
}

// GetCmdQueryRewardMembership implements the query is-rewarded command
func GetCmdQueryRewardMembership() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-rewarded [survey-id] [participant]",
		Short: "Query whether a participant was paid for a survey",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryRewardMembershipRequest{
				SurveyID:    args[0],
				Participant: args[1],
			}
			res, err := queryClient.RewardMembership(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRoute implements the query route command
func GetCmdQueryRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route [chain-name]",
		Short: "Query the route for a destination chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryRouteRequest{ChainName: args[0]}
			res, err := queryClient.Route(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryManagers implements the query managers command
func GetCmdQueryManagers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "managers",
		Short: "Query all authorized proof signers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryManagersRequest{}
			res, err := queryClient.Managers(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryParams implements the query params command
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the parameters of the survey module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryParamsRequest{}
			res, err := queryClient.Params(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryDisbursementAddress implements the query disbursement-address command
func GetCmdQueryDisbursementAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disbursement-address",
		Short: "Query the gas station disbursement account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)

			req := &types.QueryDisbursementAddressRequest{}
			res, err := queryClient.DisbursementAddress(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
