package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Creator dumps states of the contracts. Output files are:
//
//	'<label>-<block>-contracts.json': JSON array of contract states
//	'<label>-<block>-storage.csv': CSV of contract storages
//
// Storage CSV records are 'name,key,value' where name is the contract name
// given to AddContract, binary key and value are base64-encoded.
//
// Use IterateDumps to read existing dumps.
type Creator struct {
	contractsFile, storageFile *os.File

	records []contractRecord
	items   map[string]int

	storage *csv.Writer
}

// NewCreator returns Creator which dumps contracts into the given directory
// under the given ID. Resulting Creator should be closed when finished
// working with it.
//
// NewCreator fails if a dump with the same ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	pathContracts, pathStorage := dumpPaths(dir, id)

	const flags = os.O_CREATE | os.O_EXCL | os.O_WRONLY

	contractsFile, err := os.OpenFile(pathContracts, flags, 0600)
	if err != nil {
		return nil, fmt.Errorf("create file with contract states: %w", err)
	}

	storageFile, err := os.OpenFile(pathStorage, flags, 0600)
	if err != nil {
		_ = contractsFile.Close()
		return nil, fmt.Errorf("create file with storage items: %w", err)
	}

	return &Creator{
		contractsFile: contractsFile,
		storageFile:   storageFile,
		items:         make(map[string]int),
		storage:       csv.NewWriter(storageFile),
	}, nil
}

// AddContract adds state of the named contract to the dump and returns
// StorageWriter for its storage. Added contracts are written by Flush.
func (x *Creator) AddContract(name string, st state.Contract) *StorageWriter {
	x.records = append(x.records, contractRecord{
		Name:  name,
		State: st,
	})

	return &StorageWriter{
		name:    name,
		creator: x,
	}
}

// ItemCount returns number of storage items written for the named contract.
func (x *Creator) ItemCount(name string) int {
	return x.items[name]
}

// Flush writes accumulated dump to the file system.
func (x *Creator) Flush() error {
	enc := json.NewEncoder(x.contractsFile)
	enc.SetIndent("", " ")

	err := enc.Encode(x.records)
	if err != nil {
		return fmt.Errorf("encode contract states to JSON: %w", err)
	}

	x.storage.Flush()

	err = x.storage.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}

// Close releases underlying files of the Creator and makes it unusable.
func (x *Creator) Close() error {
	return errors.Join(x.storageFile.Close(), x.contractsFile.Close())
}

// StorageWriter writes storage items of a single contract.
type StorageWriter struct {
	name    string
	creator *Creator
}

// Write saves binary key-value as a storage item of the contract.
func (x *StorageWriter) Write(key, value []byte) error {
	err := x.creator.storage.Write([]string{
		x.name,
		_encoding.EncodeToString(key),
		_encoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	x.creator.items[x.name]++

	return nil
}
