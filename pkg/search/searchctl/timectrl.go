package searchctl

import (
	"context"
	"fmt"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TimeControl is the single-timeout model of §6: each Agent call is given
// one deadline for the whole search, unlike a chess clock's per-side
// remaining time.
type TimeControl struct {
	Timeout time.Duration
}

// Limits returns a soft and hard limit. After the soft limit, no new
// iterative-deepening iteration is started; the hard limit forcibly
// halts a search in progress, mirroring the chess-clock version's
// soft/hard split at a single-call granularity.
func (t TimeControl) Limits() (time.Duration, time.Duration) {
	soft := t.Timeout * 4 / 5
	return soft, t.Timeout
}

func (t TimeControl) String() string {
	return fmt.Sprintf("%.1fs", t.Timeout.Seconds())
}

// EnforceTimeControl enforces the time control limit, if any, arranging
// for h.Halt to be called once the hard limit elapses. Returns the soft
// limit and whether one is in effect.
func EnforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl]) (time.Duration, bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	soft, hard := c.Limits()
	time.AfterFunc(hard, func() {
		h.Halt()
	})

	logw.Debugf(ctx, "Time control limit for %v: [%v; %v]", c, soft, hard)
	return soft, true
}
