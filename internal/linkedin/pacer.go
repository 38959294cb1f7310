package linkedin

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer spaces successive API requests so a long pagination run stays
// under the upstream's tolerance.
type Pacer struct {
	lim *rate.Limiter
}

func NewPacer(reqPerSec float64, burst int) *Pacer {
	if reqPerSec <= 0 {
		reqPerSec = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Pacer{lim: rate.NewLimiter(rate.Limit(reqPerSec), burst)}
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.lim.Wait(ctx)
}
