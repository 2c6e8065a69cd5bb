package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Survey module sentinel errors.
//
// The relayer keys retry and alerting decisions off these codes, so every
// distinct failure the envelope pipeline can produce gets its own code.
var (
	// origin errors: rejected before anything is read from the payload
	ErrWrongSource = sdkerrors.Register(ModuleName, 2, "envelope from untrusted source chain")
	ErrWrongSender = sdkerrors.Register(ModuleName, 3, "envelope from untrusted source address")

	// decode errors: rejected before any proof token is consumed
	ErrWrongMsgID          = sdkerrors.Register(ModuleName, 4, "unknown envelope message kind")
	ErrInvalidEnvelope     = sdkerrors.Register(ModuleName, 5, "malformed envelope payload")
	ErrNoTokens            = sdkerrors.Register(ModuleName, 6, "unexpected token attachment on envelope")
	ErrArrayLengthMismatch = sdkerrors.Register(ModuleName, 7, "survey id and participant arrays differ in length")

	// proof errors
	ErrInvalidProof       = sdkerrors.Register(ModuleName, 8, "proof digest is null")
	ErrTokenReused        = sdkerrors.Register(ModuleName, 9, "proof token already consumed")
	ErrProofExpired       = sdkerrors.Register(ModuleName, 10, "proof expired")
	ErrZeroSigner         = sdkerrors.Register(ModuleName, 11, "signature recovery yielded no signer")
	ErrUnauthorizedSigner = sdkerrors.Register(ModuleName, 12, "recovered signer is not a manager")

	// business state errors
	ErrSurveyExists    = sdkerrors.Register(ModuleName, 13, "survey already exists")
	ErrSurveyNotFound  = sdkerrors.Register(ModuleName, 14, "survey not found")
	ErrAlreadyCanceled = sdkerrors.Register(ModuleName, 15, "survey already canceled")
	ErrAllRewarded     = sdkerrors.Register(ModuleName, 16, "all participants already rewarded")
	ErrLimitReached    = sdkerrors.Register(ModuleName, 17, "participant limit reached")
	ErrAlreadyRewarded = sdkerrors.Register(ModuleName, 18, "participant already rewarded for this survey")
	ErrInvalidFunding  = sdkerrors.Register(ModuleName, 19, "received amount does not cover rewards plus gas station")
	ErrUnauthorized    = sdkerrors.Register(ModuleName, 20, "unauthorized")

	// routing errors
	ErrRouteNotFound = sdkerrors.Register(ModuleName, 21, "no route registered for destination chain")
	ErrRouteExists   = sdkerrors.Register(ModuleName, 22, "route already registered for destination chain")

	ErrInvalidParams = sdkerrors.Register(ModuleName, 23, "invalid module parameters")

	// settlement errors: the transition was valid but moving the coins failed
	ErrTransferFailed = sdkerrors.Register(ModuleName, 24, "bank transfer failed")
)
