/*
Package njord implements Njord contract, an elastic supply NEP-17 token.

Balances are kept in gons, a fixed internal amount shared by all accounts.
Visible balances are gons divided by the scale factor (gons per fragment), so
a rebase changes balances of every holder at once by adjusting the factor
only. Rebases happen at most once per 15 minutes of block time and are
triggered by trades with the liquidity pair when automatic rebases are
enabled. Missed intervals are compounded.

Trades with the pair are charged with fees routed to the auto liquidity,
treasury, risk-free and supply control funds. Sells carry an extra fee sent
to the treasury. Whitelisted accounts are exempt from fees and from the
transfer and trading switches. Blacklisted bot contracts can not transfer.

The whole initial supply belongs to the treasury fund, which is also the
owner of the contract.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. It is produced
for the recipient and for every fee destination.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Rebase notification. This notification is produced when the scale factor
changes.

	Rebase:
	  - name: time
	    type: Integer
	  - name: oldSupply
	    type: Integer
	  - name: newSupply
	    type: Integer

Configuration notifications. Every owner setter produces a notification with
the previous and the new value, e.g.

	TreasuryFundChanged:
	  - name: oldAccount
	    type: Hash160
	  - name: newAccount
	    type: Hash160

Whitelist and blacklist changes produce WhitelistAdded, WhitelistRemoved and
BotBlacklisted notifications.
*/
package njord

/*
Contract storage model.

# Summary
Key-value storage format:
  - g<interop.Hash160> -> int
    gons balance of the account
  - 's' -> std.Serialize(Scale)
    total supply and gons per fragment
  - 'c' -> std.Serialize(Config)
    owner, pair, fee funds and switches
  - 'f' -> std.Serialize(common.FeeTable)
    fee rates in basis points
  - 'r' -> std.Serialize(RebaseState)
    rebase schedule and rate
  - w<interop.Hash160> -> []byte{1}
    whitelisted accounts
  - b<interop.Hash160> -> []byte{1}
    blacklisted bot contracts

# Accounting
Sum of all gons balances is always equal to the total gons amount set at
deployment.
*/
