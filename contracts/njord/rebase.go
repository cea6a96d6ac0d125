package njord

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/njord-contract/common"
)

// RebaseState is a schedule of automatic rebases.
type RebaseState struct {
	// Block time of the latest rebase in milliseconds, always a whole
	// number of intervals after the schedule start.
	LastRebasedTime int
	// Supply change per interval in rebaseRatePrecision units.
	Rate int
}

func getRebaseState(ctx storage.Context) RebaseState {
	data := storage.Get(ctx, rebaseKey)
	return std.Deserialize(data.([]byte)).(RebaseState)
}

func setRebaseState(ctx storage.Context, st RebaseState) {
	common.SetSerialized(ctx, rebaseKey, st)
}

// compound applies rate to supply once per period. It stops as soon as the
// supply leaves (0, maxSupply] range.
func compound(supply, rate, periods int) int {
	for i := 0; i < periods; i++ {
		supply = supply * (rebaseRatePrecision + rate) / rebaseRatePrecision
		if supply <= 0 || supply > maxSupply {
			break
		}
	}

	return supply
}

func validRebaseRate(rate int) bool {
	return rate > -rebaseRatePrecision && rate <= rebaseRatePrecision
}

// rebaseIfDue applies every rebase period elapsed since the last one. It
// does nothing if less than a single interval has passed.
func rebaseIfDue(ctx storage.Context) {
	var (
		now     = runtime.GetTime()
		st      = getRebaseState(ctx)
		periods = (now - st.LastRebasedTime) / rebaseInterval
	)

	if periods <= 0 {
		return
	}

	var (
		scale  = getScale(ctx)
		supply = compound(scale.TotalSupply, st.Rate, periods)
		last   = st.LastRebasedTime + periods*rebaseInterval
	)

	if supply <= 0 || supply > maxSupply {
		runtime.Log("rebase skipped: supply is out of range")

		st.LastRebasedTime = last
		setRebaseState(ctx, st)
		return
	}

	applyRebase(ctx, scale, st, supply, last)
}

func applyRebase(ctx storage.Context, scale Scale, st RebaseState, supply, last int) {
	next := scaleForSupply(supply)
	setScale(ctx, next)

	st.LastRebasedTime = last
	setRebaseState(ctx, st)

	runtime.Notify("Rebase", last, scale.TotalSupply, next.TotalSupply)
}

// ManualRebase applies a single rebase period at once. It can be invoked
// only by the owner while owner rebases are enabled. The time gate is not
// checked, the schedule restarts from the current block time.
//
// It produces Rebase notification.
func ManualRebase() {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)

	if !cfg.OwnerRebase {
		panic(common.ErrOwnerRebaseDisabled)
	}

	var (
		st     = getRebaseState(ctx)
		scale  = getScale(ctx)
		supply = compound(scale.TotalSupply, st.Rate, 1)
	)

	applyRebase(ctx, scale, st, supply, runtime.GetTime())
}

// Rebase applies pending rebase periods if automatic rebases are enabled.
// Anyone can call it, so balances can be refreshed without a trade.
func Rebase() {
	ctx := storage.GetContext()
	if getConfig(ctx).AutoRebase {
		rebaseIfDue(ctx)
	}
}

// RebaseRate returns supply change per interval in 1/10^7 units.
func RebaseRate() int {
	return getRebaseState(storage.GetReadOnlyContext()).Rate
}

// LastRebasedTime returns block time of the latest rebase in milliseconds.
func LastRebasedTime() int {
	return getRebaseState(storage.GetReadOnlyContext()).LastRebasedTime
}

// NextRebaseTime returns the earliest block time of the next automatic
// rebase.
func NextRebaseTime() int {
	return getRebaseState(storage.GetReadOnlyContext()).LastRebasedTime + rebaseInterval
}
