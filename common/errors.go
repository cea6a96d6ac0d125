package common

// Fault messages shared by the Njord and Fjord contracts. Contract methods
// panic with one of these strings, so the whole invocation is reverted.
const (
	// ErrNotOwner is thrown when an owner-only method is called without the
	// owner witness.
	ErrNotOwner = "caller is not the owner"
	// ErrZeroAddress is thrown when an account argument is empty or consists
	// of zero bytes only.
	ErrZeroAddress = "Address Zero Not Accepted"
	// ErrNothingChanged is thrown by setters receiving the value already in
	// effect.
	ErrNothingChanged = "Nothing Changed"
	// ErrAlreadyWhitelisted is thrown when adding an exempt account again.
	ErrAlreadyWhitelisted = "Already Whitelisted"
	// ErrAlreadyNotWhitelisted is thrown when removing a non-exempt account.
	ErrAlreadyNotWhitelisted = "Already Not Whitelisted"
	// ErrTransferDisabled is thrown when transfers are globally disabled and
	// neither party is exempt.
	ErrTransferDisabled = "Transfer State is disabled"
	// ErrTradingDisabled is thrown for trades with the pair while trading is
	// disabled.
	ErrTradingDisabled = "Trading is disabled"
	// ErrBlacklisted is thrown when one of the transfer parties is a
	// blacklisted bot.
	ErrBlacklisted = "Blacklisted"
	// ErrOnlyContract is thrown when a blacklist target is not a deployed
	// contract.
	ErrOnlyContract = "Only contract address"
	// ErrNotLive is thrown by wrap and unwrap before the launch.
	ErrNotLive = "Not Live"
	// ErrFeeTooHigh is thrown when a fee table sums above 100%.
	ErrFeeTooHigh = "Fee Too High"
	// ErrInvalidFee is thrown for negative fee rates.
	ErrInvalidFee = "Invalid Fee Rate"
	// ErrInvalidRebaseRate is thrown for rebase rates outside (-100%, 100%].
	ErrInvalidRebaseRate = "Invalid Rebase Rate"
	// ErrInsufficientBalance is thrown when burning more than the account
	// holds.
	ErrInsufficientBalance = "Insufficient Balance"
	// ErrNegativeAmount is thrown for negative transfer amounts.
	ErrNegativeAmount = "negative amount"
	// ErrOwnerRebaseDisabled is thrown by manual rebase when owner rebases
	// are switched off.
	ErrOwnerRebaseDisabled = "Owner Rebase is disabled"
	// ErrSupplyOutOfRange is thrown when a rebase would leave the supply
	// outside of (0, max supply].
	ErrSupplyOutOfRange = "Supply Out Of Range"
	// ErrNothingToWithdraw is thrown when the contract holds no fees.
	ErrNothingToWithdraw = "Nothing To Withdraw"
	// ErrSelfRecovery is thrown when the contract is asked to recover its own
	// token.
	ErrSelfRecovery = "Cannot Recover Own Token"
	// ErrAmountTooSmall is thrown when a conversion rounds down to zero.
	ErrAmountTooSmall = "Amount Too Small"
	// ErrUnexpectedToken is thrown when a payment comes from an unexpected
	// token contract.
	ErrUnexpectedToken = "Unexpected Token"
)
