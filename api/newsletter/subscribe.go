package newsletter

import (
	"net/http"
	"revorz_storefront/handling"
	"revorz_storefront/lib"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// Subscribe acknowledges the footer newsletter form of any page. A blank email gets no notification.
func (nrm *NewsletterRoutesManager) Subscribe(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.NewsletterRequest](r)
	if err != nil {
		handling.HandleBodyError(err, w)
		return
	}

	n, ok := storefront.NewsletterNotification(body.Email, time.Now())
	if !ok {
		gecho.Success(w,
			gecho.WithMessage("info.newsletter.emptyEmail"),
			gecho.Send(),
		)
		return
	}

	if err := nrm.emailService.SendNewsletterWelcome(body.Email); err != nil {
		nrm.logger.Warn("Newsletter welcome email not sent", gecho.Field("error", err))
	}

	gecho.Success(w,
		gecho.WithMessage("success.newsletter.subscribed"),
		gecho.WithData(n),
		gecho.Send(),
	)
}
