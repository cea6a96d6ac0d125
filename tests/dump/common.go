package dump

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// ID identifies a dump taken from some network.
type ID struct {
	// Label of the network (e.g. testnet, mainnet).
	Label string
	// Chain height at which contracts were dumped.
	Block uint32
}

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

// parseID decodes ID from the dump file name.
func parseID(name string) (ID, error) {
	parts := strings.Split(name, sep)
	if len(parts) < 3 {
		return ID{}, fmt.Errorf("expected '%s'-separated name of at least 3 parts", sep)
	}

	block, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return ID{}, fmt.Errorf("decode block number from '%s': %w", parts[1], err)
	}

	return ID{Label: parts[0], Block: uint32(block)}, nil
}

const (
	sep = "-"

	contractsSuffix = "contracts.json"
	storageSuffix   = "storage.csv"
)

// dumpPaths returns paths of files with contract states and storage items of
// the dump.
func dumpPaths(dir string, id ID) (contracts, storage string) {
	contracts = filepath.Join(dir, id.String()+sep+contractsSuffix)
	storage = filepath.Join(dir, id.String()+sep+storageSuffix)
	return
}

// encoding of binary keys and values
var _encoding = base64.StdEncoding

// contractRecord is a JSON-encoded information about the dumped contract.
type contractRecord struct {
	Name  string         `json:"name"`
	State state.Contract `json:"state"`
}
