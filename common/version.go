package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Versions are encoded as major*1_000_000 + minor*1_000 + patch.
const (
	major = 0
	minor = 2
	patch = 0

	// Version of Njord and Fjord contracts built from this tree.
	Version = major*1_000_000 + minor*1_000 + patch

	// PrevVersion is the oldest version contracts can be updated from. Storage
	// layouts of all versions starting from PrevVersion are compatible.
	PrevVersion = 0*1_000_000 + 1*1_000 + 0

	// ErrVersionMismatch is thrown by CheckVersion when the running contract
	// is older than PrevVersion.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion if the running contract is
	// of the current version already.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics unless contract of the given version can be updated
// to the current one.
func CheckVersion(from int) {
	if from < PrevVersion {
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa(PrevVersion, 10))
	}
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion appends version of the running contract to the update data,
// so the new code can check it in _deploy.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
