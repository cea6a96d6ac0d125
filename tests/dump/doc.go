/*
Package dump provides I/O operations for collected states of the Njord and
Fjord contracts.

A dump holds contract states along with their storages taken at some height
of a live network. It allows to reproduce real token ledgers in a test chain,
first of all to check contract updates against data they have to migrate.

Dumps are stored in the file system using human-readable encoding, see
Creator for the exact format.
*/
package dump
