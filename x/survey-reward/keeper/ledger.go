package keeper

import (
	"encoding/hex"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// CreateSurvey inserts a new survey record funded by amountReceived, the
// native value escrowed with the envelope. The received amount must equal
// participantsLimit * rewardAmount + gasStationAmount exactly; the gas
// station share is forwarded to the disbursement address and the reward pool
// stays escrowed in the module account.
func (k Keeper) CreateSurvey(ctx sdk.Context, p types.CreateSurveyPayload, amountReceived sdk.Coin) error {
	if k.HasSurvey(ctx, p.SurveyID) {
		return errorsmod.Wrapf(types.ErrSurveyExists, "%s", p.SurveyID)
	}

	required := p.RewardAmount.MulRaw(int64(p.ParticipantsLimit)).Add(p.GasStationAmount)
	if !amountReceived.Amount.Equal(required) {
		return errorsmod.Wrapf(types.ErrInvalidFunding,
			"received %s%s, need %s%s", amountReceived.Amount, amountReceived.Denom, required, amountReceived.Denom)
	}

	if p.GasStationAmount.IsPositive() {
		disbursement := k.GetDisbursementAddress(ctx)
		gasCoin := sdk.NewCoin(amountReceived.Denom, p.GasStationAmount)
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, disbursement, sdk.NewCoins(gasCoin)); err != nil {
			return errorsmod.Wrapf(types.ErrTransferFailed, "gas station forward: %v", err)
		}
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeGasStation,
				sdk.NewAttribute(types.AttributeKeySurveyID, p.SurveyID),
				sdk.NewAttribute(types.AttributeKeyAddress, disbursement.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, gasCoin.String()),
			),
		)
	}

	survey := types.SurveyRecord{
		ID:                p.SurveyID,
		Creator:           p.Creator,
		ParticipantsLimit: p.ParticipantsLimit,
		RewardAmount:      p.RewardAmount,
		ContentHash:       p.ContentHash,
		RewardDenom:       amountReceived.Denom,
	}
	k.SetSurvey(ctx, survey)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSurveyCreated,
			sdk.NewAttribute(types.AttributeKeySurveyID, survey.ID),
			sdk.NewAttribute(types.AttributeKeyCreator, survey.Creator),
			sdk.NewAttribute(types.AttributeKeyParticipantsLimit, fmt.Sprintf("%d", survey.ParticipantsLimit)),
			sdk.NewAttribute(types.AttributeKeyRewardAmount, survey.RewardAmount.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, survey.RewardDenom),
			sdk.NewAttribute(types.AttributeKeyContentHash, hex.EncodeToString(survey.ContentHash)),
		),
	)
	return nil
}

// CheckCancelable runs the cancel business-state checks without mutating
// anything. The router consults this before proof validation so that a
// cancel doomed on state grounds never consumes its proof token.
func (k Keeper) CheckCancelable(ctx sdk.Context, surveyID string) (types.SurveyRecord, error) {
	survey, found := k.GetSurvey(ctx, surveyID)
	if !found {
		return types.SurveyRecord{}, errorsmod.Wrapf(types.ErrSurveyNotFound, "%s", surveyID)
	}
	if survey.Canceled {
		return types.SurveyRecord{}, errorsmod.Wrapf(types.ErrAlreadyCanceled, "%s", surveyID)
	}
	if survey.ParticipantsRewarded >= survey.ParticipantsLimit {
		return types.SurveyRecord{}, errorsmod.Wrapf(types.ErrAllRewarded, "%s", surveyID)
	}
	return survey, nil
}

// CancelSurvey cancels a survey and refunds the unspent reward pool to the
// creator. Only the original creator or a manager may cancel.
func (k Keeper) CancelSurvey(ctx sdk.Context, surveyID string, signer sdk.AccAddress) error {
	survey, err := k.CheckCancelable(ctx, surveyID)
	if err != nil {
		return err
	}

	if signer.String() != survey.Creator && !k.IsManager(ctx, signer.String()) {
		return errorsmod.Wrapf(types.ErrUnauthorized,
			"%s is neither creator nor manager of survey %s", signer.String(), surveyID)
	}

	spent := survey.RewardAmount.MulRaw(int64(survey.ParticipantsRewarded))
	refund := survey.FundingRequired().Sub(spent)

	creator := sdk.MustAccAddressFromBech32(survey.Creator)
	refundCoin := sdk.NewCoin(survey.RewardDenom, refund)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator, sdk.NewCoins(refundCoin)); err != nil {
		return errorsmod.Wrapf(types.ErrTransferFailed, "refund transfer: %v", err)
	}

	survey.Canceled = true
	k.SetSurvey(ctx, survey)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSurveyCanceled,
			sdk.NewAttribute(types.AttributeKeySurveyID, survey.ID),
			sdk.NewAttribute(types.AttributeKeyCreator, survey.Creator),
			sdk.NewAttribute(types.AttributeKeySigner, signer.String()),
			sdk.NewAttribute(types.AttributeKeyRefundAmount, refundCoin.String()),
		),
	)
	return nil
}

// PayReward transfers one reward to a participant, records the payout
// membership and increments the survey's counter. Returns true when this
// payout filled the last participant slot, which happens at most once per
// survey.
func (k Keeper) PayReward(ctx sdk.Context, surveyID, participant string) (finished bool, err error) {
	survey, found := k.GetSurvey(ctx, surveyID)
	if !found {
		return false, errorsmod.Wrapf(types.ErrSurveyNotFound, "%s", surveyID)
	}
	if survey.Canceled {
		return false, errorsmod.Wrapf(types.ErrAlreadyCanceled, "%s", surveyID)
	}
	if survey.ParticipantsRewarded >= survey.ParticipantsLimit {
		return false, errorsmod.Wrapf(types.ErrLimitReached, "%s", surveyID)
	}
	if k.HasRewardMembership(ctx, surveyID, participant) {
		return false, errorsmod.Wrapf(types.ErrAlreadyRewarded, "%s already rewarded for %s", participant, surveyID)
	}

	participantAddr, err := sdk.AccAddressFromBech32(participant)
	if err != nil {
		return false, errorsmod.Wrapf(types.ErrInvalidEnvelope, "invalid participant address: %s", participant)
	}

	rewardCoin := sdk.NewCoin(survey.RewardDenom, survey.RewardAmount)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, participantAddr, sdk.NewCoins(rewardCoin)); err != nil {
		return false, errorsmod.Wrapf(types.ErrTransferFailed, "reward transfer: %v", err)
	}

	survey.ParticipantsRewarded++
	k.SetSurvey(ctx, survey)
	k.SetRewardMembership(ctx, surveyID, participant)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardPaid,
			sdk.NewAttribute(types.AttributeKeySurveyID, survey.ID),
			sdk.NewAttribute(types.AttributeKeyParticipant, participant),
			sdk.NewAttribute(types.AttributeKeyRewardAmount, rewardCoin.String()),
			sdk.NewAttribute(types.AttributeKeyParticipantsRewarded, fmt.Sprintf("%d", survey.ParticipantsRewarded)),
		),
	)

	if survey.ParticipantsRewarded == survey.ParticipantsLimit {
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSurveyFinished,
				sdk.NewAttribute(types.AttributeKeySurveyID, survey.ID),
				sdk.NewAttribute(types.AttributeKeyParticipantsRewarded, fmt.Sprintf("%d", survey.ParticipantsRewarded)),
			),
		)
		return true, nil
	}
	return false, nil
}
