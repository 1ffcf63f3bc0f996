package storefront

import (
	"context"
	"fmt"
	"time"
)

// PromoDuration is how long the page promotion runs after the page is opened
const PromoDuration = 5*24*time.Hour + 12*time.Hour

const promoEndedText = "Penawaran Berakhir"

type Countdown struct {
	end time.Time
}

func NewCountdown(start time.Time) Countdown {
	return Countdown{end: start.Add(PromoDuration)}
}

func (c Countdown) End() time.Time { return c.end }

// Text renders the time left as days, hours and minutes
func (c Countdown) Text(now time.Time) string {
	left := c.end.Sub(now)
	if left < 0 {
		return promoEndedText
	}

	days := left / (24 * time.Hour)
	hours := (left % (24 * time.Hour)) / time.Hour
	minutes := (left % time.Hour) / time.Minute

	return fmt.Sprintf("%d hari %d jam %d menit", days, hours, minutes)
}

// Run calls tick with the current text immediately and then on every interval until ctx is done
func (c Countdown) Run(ctx context.Context, interval time.Duration, now func() time.Time, tick func(string)) {
	tick(c.Text(now()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick(c.Text(now()))
		}
	}
}
