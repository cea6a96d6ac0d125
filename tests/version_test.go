package tests

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/njord-contract/common"
	"github.com/stretchr/testify/require"
)

func parseVersion(t *testing.T, s string) int {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	require.Len(t, parts, 3)

	var res int
	for i := range parts {
		n, err := strconv.Atoi(parts[i])
		require.NoError(t, err)
		require.Less(t, n, 1_000)
		res = res*1_000 + n
	}

	return res
}

func TestVersion(t *testing.T) {
	data, err := os.ReadFile("../VERSION")
	require.NoError(t, err)

	require.Equal(t, common.Version, parseVersion(t, string(data)),
		"version from common package is different from the one in VERSION file")
	require.Less(t, common.PrevVersion, common.Version)
}

func TestContractVersion(t *testing.T) {
	e := NewExecutor(t)
	f := NewFunds(t, e)

	njord := DeployNjord(t, e, "../contracts/njord", f, util.Uint160{})
	fjord := DeployFjord(t, e, "../contracts/fjord", f, njord)

	for _, h := range []util.Uint160{njord, fjord} {
		e.CommitteeInvoker(h).Invoke(t, common.Version, "version")
	}
}
