package types

// BaseDenom is the chain's base denomination. Survey funding may arrive in
// any denom the bridge escrows, but gas station disbursements and default
// genesis routes are denominated in uqstn.
const BaseDenom = "uqstn"
