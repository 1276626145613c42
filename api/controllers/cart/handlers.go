package cart

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/boondocksgrill/ordering/api/responses"
	"github.com/boondocksgrill/ordering/api/validators"
	"github.com/boondocksgrill/ordering/internal/cart"
	"github.com/boondocksgrill/ordering/internal/receipt"
	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
	"github.com/boondocksgrill/ordering/pkg/logger"
)

// Fetch returns the current cart with its quote.
func Fetch(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(svc.Items(), svc.Quote()))
	}
}

// AddItem adds one configured item to the cart, merging into an existing
// line when the configuration matches.
func AddItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		var req AddItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lines, err := svc.AddItem(r.Context(), req.Item, req.toSelection())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(lines, svc.Quote()))
	}
}

// Decrement lowers the keyed line by one, removing it at quantity one.
func Decrement(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		lines := svc.Decrement(r.Context(), chi.URLParam(r, "key"))
		responses.WriteSuccess(w, newCartView(lines, svc.Quote()))
	}
}

// Delete removes the keyed line regardless of quantity.
func Delete(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		lines := svc.Delete(r.Context(), chi.URLParam(r, "key"))
		responses.WriteSuccess(w, newCartView(lines, svc.Quote()))
	}
}

// SetAddon attaches the named addition to the keyed line, replacing any
// prior one.
func SetAddon(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		var req SetAddonRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lines, err := svc.SetAddon(r.Context(), chi.URLParam(r, "key"), req.Addon)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(lines, svc.Quote()))
	}
}

// Replace swaps the whole cart for the submitted lines.
func Replace(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		var req ReplaceCartRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		items, err := req.toLineItems()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lines, err := svc.Replace(r.Context(), items)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(lines, svc.Quote()))
	}
}

// Checkout finalizes the order, empties the cart and returns the priced
// lines with a printable receipt.
func Checkout(svc cart.Service, receiptHeader string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		lines, quote, err := svc.Checkout(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rendered := receipt.Render(receiptHeader, time.Now(), lines, quote)
		view := newCartView(lines, quote)
		responses.WriteSuccess(w, CheckoutView{
			Lines:   view.Lines,
			Total:   quote.Total,
			Savings: quote.Savings,
			Receipt: rendered.Text,
		})
	}
}
