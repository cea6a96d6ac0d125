package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// IterateDumps reads all dumps made by Creator in the specified directory and
// passes ID and Reader of each one into f. Missing directory is treated as
// empty.
func IterateDumps(dir string, f func(ID, *Reader)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, e error) error {
		if e != nil {
			if errors.Is(e, fs.ErrNotExist) {
				return nil
			}
			return e
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), contractsSuffix) {
			return nil
		}

		id, err := parseID(d.Name())
		if err != nil {
			return fmt.Errorf("decode dump ID from file name '%s': %w", d.Name(), err)
		}

		r, err := readDump(filepath.Dir(path), id)
		if err != nil {
			return fmt.Errorf("read dump '%s': %w", id, err)
		}

		f(id, r)

		return nil
	})
}

// KeyValue is a single storage item.
type KeyValue struct {
	Key, Value []byte
}

// Reader provides contracts collected in a single dump.
type Reader struct {
	records []contractRecord
	storage map[string][]KeyValue
}

func readDump(dir string, id ID) (*Reader, error) {
	pathContracts, pathStorage := dumpPaths(dir, id)

	contractsFile, err := os.Open(pathContracts)
	if err != nil {
		return nil, fmt.Errorf("open file with contract states: %w", err)
	}
	defer contractsFile.Close()

	storageFile, err := os.Open(pathStorage)
	if err != nil {
		return nil, fmt.Errorf("open file with storage items: %w", err)
	}
	defer storageFile.Close()

	var r Reader

	err = json.NewDecoder(contractsFile).Decode(&r.records)
	if err != nil {
		return nil, fmt.Errorf("decode contract states from JSON: %w", err)
	}

	r.storage, err = readStorage(storageFile)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func readStorage(src io.Reader) (map[string][]KeyValue, error) {
	res := make(map[string][]KeyValue)

	rd := csv.NewReader(src)
	rd.FieldsPerRecord = 3
	rd.ReuseRecord = true

	for {
		rec, err := rd.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return nil, fmt.Errorf("read next CSV record: %w", err)
		}

		var kv KeyValue

		kv.Key, err = _encoding.DecodeString(rec[1])
		if err != nil {
			return nil, fmt.Errorf("decode storage item key: %w", err)
		}

		kv.Value, err = _encoding.DecodeString(rec[2])
		if err != nil {
			return nil, fmt.Errorf("decode storage item value: %w", err)
		}

		res[rec[0]] = append(res[rec[0]], kv)
	}
}

// IterateContractStates passes names and states of all dumped contracts into
// f.
func (x *Reader) IterateContractStates(f func(name string, st state.Contract)) {
	for i := range x.records {
		f(x.records[i].Name, x.records[i].State)
	}
}

// IterateContractStorages passes all storage items of dumped contracts into
// f.
func (x *Reader) IterateContractStorages(f func(name string, key, value []byte)) {
	for name, kvs := range x.storage {
		for i := range kvs {
			f(name, kvs[i].Key, kvs[i].Value)
		}
	}
}

// ContractStorage returns storage items of the named contract.
func (x *Reader) ContractStorage(name string) []KeyValue {
	return x.storage[name]
}
