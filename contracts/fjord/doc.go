/*
Package fjord implements Fjord contract, a fixed supply wrapper of Njord
tokens.

Njord balances change with every rebase, wrapped balances do not. A wrapped
unit is a claim on a share of Njord supply, its price in Njord units is the
exchange ratio. The ratio is recalculated on every wrap and unwrap from Njord
total supply, which only rebases change, and never decreases.

To wrap tokens, transfer Njord to the Fjord contract, wrapped tokens are
minted to the sender. Unwrap burns wrapped tokens and transfers Njord back.
Both directions round down. Wrapping is disabled until the owner sets the
live status.

Fjord contract must be whitelisted in Njord contract.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Wrap notification. This notification is produced when Njord tokens are
wrapped.

	Wrap:
	  - name: account
	    type: Hash160
	  - name: elasticAmount
	    type: Integer
	  - name: wrappedAmount
	    type: Integer

Unwrap notification. This notification is produced when wrapped tokens are
burnt and Njord tokens are sent back.

	Unwrap:
	  - name: account
	    type: Hash160
	  - name: wrappedAmount
	    type: Integer
	  - name: elasticAmount
	    type: Integer

RatioChanged notification. This notification is produced when the stored
exchange ratio grows.

	RatioChanged:
	  - name: oldRatio
	    type: Integer
	  - name: newRatio
	    type: Integer
*/
package fjord

/*
Contract storage model.

# Summary
Key-value storage format:
  - a<interop.Hash160> -> int
    wrapped balance of the account
  - 't' -> int
    total wrapped supply
  - 'x' -> int
    exchange ratio in 10^36 units
  - 'c' -> std.Serialize(Config)
    owner, Njord contract, pair, fee funds and live status
  - 'f' -> std.Serialize(common.FeeTable)
    fee rates in basis points
  - w<interop.Hash160> -> []byte{1}
    whitelisted accounts
*/
