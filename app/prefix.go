package app

// AccountAddressPrefix is the bech32 prefix for account addresses.
const AccountAddressPrefix = "qstn"
