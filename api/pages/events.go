package pages

import (
	"errors"
	"net/http"
	"revorz_storefront/api/health"
	"revorz_storefront/handling"
	"revorz_storefront/lib"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

func appliedMessage(applied bool, success string) string {
	if applied {
		return success
	}
	return "info.page.ignored"
}

func (prm *PageRoutesManager) SelectColor(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SelectColorRequest](r)
	if err != nil {
		handling.HandleBodyError(err, w)
		return
	}

	ui := &responseUI{}
	applied := page.SelectColor(ui, structs.Color(body.Color))

	gecho.Success(w,
		gecho.WithMessage(appliedMessage(applied, "success.page.colorSelected")),
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}

func (prm *PageRoutesManager) ActivateColorKey(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ColorKeyRequest](r)
	if err != nil {
		handling.HandleBodyError(err, w)
		return
	}

	ui := &responseUI{}
	applied := page.ActivateColorKey(ui, structs.Color(body.Color), body.Key)

	gecho.Success(w,
		gecho.WithMessage(appliedMessage(applied, "success.page.colorSelected")),
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}

func (prm *PageRoutesManager) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.QuantityRequest](r)
	if err != nil {
		handling.HandleBodyError(err, w)
		return
	}

	ui := &responseUI{}
	page.ChangeQuantity(ui, body.Delta)

	gecho.Success(w,
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}

func (prm *PageRoutesManager) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	ui := &responseUI{}
	res, err := page.AddToCart(r.Context(), ui)
	if errors.Is(err, storefront.ErrLoginRequired) {
		health.CartAdditions.WithLabelValues("gated").Inc()
		gecho.Unauthorized(w,
			gecho.WithMessage("error.auth.loginRequired"),
			gecho.WithData(ui.response(id, page)),
			gecho.Send(),
		)
		return
	}
	if err != nil {
		handling.HandleError(err, "Failed to add to cart", prm.logger, w)
		return
	}

	outcome := "added"
	if res.Merged {
		outcome = "merged"
	}
	health.CartAdditions.WithLabelValues(outcome).Inc()

	gecho.Success(w,
		gecho.WithMessage("success.cart."+outcome),
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}

func (prm *PageRoutesManager) GoToCartOrLogin(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	ui := &responseUI{}
	if _, err := page.GoToCartOrLogin(r.Context(), ui); err != nil {
		handling.HandleError(err, "Failed to resolve cart destination", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}

func (prm *PageRoutesManager) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	ui := &responseUI{}
	if _, err := page.ToggleTheme(r.Context(), ui); err != nil {
		handling.HandleError(err, "Failed to toggle theme", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}

func (prm *PageRoutesManager) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.NewsletterRequest](r)
	if err != nil {
		handling.HandleBodyError(err, w)
		return
	}

	ui := &responseUI{}
	subscribed := page.SubscribeNewsletter(ui, body.Email)
	if subscribed {
		if err := prm.emailService.SendNewsletterWelcome(body.Email); err != nil {
			prm.logger.Warn("Newsletter welcome email not sent", gecho.Field("error", err))
		}
	}

	gecho.Success(w,
		gecho.WithMessage(appliedMessage(subscribed, "success.newsletter.subscribed")),
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}
