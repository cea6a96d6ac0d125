/*
Package migration provides framework to test updates of the Njord and Fjord
contracts.

Token ledgers live as long as the contracts do, so every update must keep
balances, scale and configuration intact. The package builds a test chain from
the dumped contract states (see package dump) and allows to update the tested
contract there and read its data afterwards.
*/
package migration
