package pages

import (
	"errors"
	"fmt"
	"net/http"
	"revorz_storefront/handling"
	"time"

	"github.com/MonkyMars/gecho"
)

type countdownResponse struct {
	Text   string    `json:"text"`
	EndsAt time.Time `json:"endsAt"`
}

func (prm *PageRoutesManager) GetCountdown(w http.ResponseWriter, r *http.Request) {
	_, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	countdown := page.Countdown()
	gecho.Success(w,
		gecho.WithData(countdownResponse{
			Text:   countdown.Text(time.Now()),
			EndsAt: countdown.End(),
		}),
		gecho.Send(),
	)
}

// StreamCountdown pushes the countdown text as server-sent events until the client goes away
func (prm *PageRoutesManager) StreamCountdown(w http.ResponseWriter, r *http.Request) {
	_, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	opts, err := handling.ParseStreamOptions(r)
	if err != nil {
		handling.HandleBodyError(err, w)
		return
	}

	rc := http.NewResponseController(w)
	// The stream outlives the server write timeout
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		prm.logger.Debug("Could not clear write deadline", gecho.Field("error", err))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	page.Countdown().Run(r.Context(), opts.Interval, time.Now, func(text string) {
		fmt.Fprintf(w, "event: countdown\ndata: %s\n\n", text)
		if err := rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
			prm.logger.Debug("Countdown flush failed", gecho.Field("error", err))
		}
	})
}
