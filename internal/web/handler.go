// Package web serves the customer and admin pages. Everything is rendered
// server-side with html/template, so user-supplied fields are escaped by
// default before they reach markup.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mousespa/internal/domain"
	"mousespa/internal/dto"
	apperrors "mousespa/internal/errors"
	"mousespa/internal/pricing"
)

//go:embed templates/*.html
var templateFS embed.FS

// OrderService is everything the pages need from the order module.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Track(ctx context.Context, id uint) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.Status) error
	Delete(ctx context.Context, id uint) error
	Quote(services []string, quantity int, pickupMethod string) pricing.Summary
}

type Handler struct {
	svc    OrderService
	logger *zap.Logger
	tmpl   *template.Template
}

func NewHandler(svc OrderService, logger *zap.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Handler{
		svc:    svc,
		logger: logger,
		tmpl:   tmpl,
	}, nil
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.OrderFormPage)
	r.Post("/orders", h.SubmitOrder)
	r.Get("/track", h.TrackPage)
	r.Get("/admin", h.AdminBoard)
	r.Get("/admin/orders/{id}/delete", h.ConfirmDeletePage)
	r.Post("/admin/orders/{id}/delete", h.DeleteOrder)
	r.Post("/admin/orders/{id}/status", h.UpdateOrderStatus)
	r.Post("/theme", h.ToggleTheme)
}

func (h *Handler) OrderFormPage(w http.ResponseWriter, r *http.Request) {
	form := formData{PadQuantity: pricing.MinQuantity}
	h.renderOrderForm(w, r, form, nil, nil)
}

// SubmitOrder handles the intake form post. A validation failure re-renders
// the form with the entered values and per-field messages; nothing reaches
// the database. On success the form resets to its defaults.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := formData{
		CustomerName:  r.PostForm.Get("customer_name"),
		PhoneNumber:   r.PostForm.Get("phone_number"),
		Email:         r.PostForm.Get("email"),
		Services:      r.PostForm["services"],
		PadQuantity:   pricing.ParseQuantity(r.PostForm.Get("pad_quantity")),
		PickupMethod:  r.PostForm.Get("pickup_method"),
		PickupAddress: r.PostForm.Get("pickup_address"),
		Notes:         r.PostForm.Get("notes"),
	}

	order, err := h.svc.Create(r.Context(), dto.CreateOrderRequest{
		CustomerName:  form.CustomerName,
		PhoneNumber:   form.PhoneNumber,
		Email:         form.Email,
		Services:      form.Services,
		PadQuantity:   form.PadQuantity,
		PickupMethod:  form.PickupMethod,
		PickupAddress: form.PickupAddress,
		Notes:         form.Notes,
	})
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			fieldErrors := make(map[string]string, len(ve.Details))
			for _, d := range ve.Details {
				fieldErrors[d.Field] = d.Message
			}
			toast := &Toast{Kind: "error", Title: "Form Tidak Lengkap", Message: ve.Message}
			h.renderOrderForm(w, r, form, fieldErrors, toast)
			return
		}

		h.logger.Error("order submission failed", zap.Error(err))
		toast := &Toast{Kind: "error", Title: "Gagal Mengirim Pesanan", Message: "Silakan coba lagi atau hubungi kami melalui WhatsApp"}
		h.renderOrderForm(w, r, form, nil, toast)
		return
	}

	toast := &Toast{
		Kind:    "success",
		Title:   "Pesanan Berhasil!",
		Message: fmt.Sprintf("Terima kasih! Pesanan Anda telah kami terima. Order ID: #%d", order.ID),
	}
	h.renderOrderForm(w, r, formData{PadQuantity: pricing.MinQuantity}, nil, toast)
}

func (h *Handler) renderOrderForm(w http.ResponseWriter, r *http.Request, form formData, fieldErrors map[string]string, toast *Toast) {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	view := indexView{
		Page: h.newPage(r, toast),
		ServiceOptions: serviceOptions(form.Services),
		Form:           form,
		Errors:         fieldErrors,
		Summary:        h.svc.Quote(form.Services, form.PadQuantity, form.PickupMethod),
	}
	h.render(w, "index.html", view)
}

func (h *Handler) TrackPage(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")

	view := trackView{
		Page: h.newPage(r, nil),
		OrderID: orderID,
	}

	if orderID == "" {
		if r.URL.Query().Has("order_id") {
			view.Toast = &Toast{Kind: "error", Title: "Error", Message: "Masukkan Order ID"}
		}
		h.render(w, "track.html", view)
		return
	}

	id, err := strconv.ParseUint(orderID, 10, 32)
	if err != nil {
		view.NotFound = true
		h.render(w, "track.html", view)
		return
	}

	order, err := h.svc.Track(r.Context(), uint(id))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			h.logger.Error("tracking lookup failed", zap.Error(err))
		}
		view.NotFound = true
		h.render(w, "track.html", view)
		return
	}

	view.Result = &trackResult{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Services:     domain.DecodeServices(order.Services).Display(),
		PadQuantity:  order.PadQuantity,
		CreatedAt:    formatDateID(order.CreatedAt),
		Stages:       domain.ProgressStages(order.Status),
	}
	h.render(w, "track.html", view)
}

func (h *Handler) AdminBoard(w http.ResponseWriter, r *http.Request) {
	view := adminView{
		Page: h.newPage(r, flashToast(r)),
		StatusOptions: statusOptions(),
	}

	orders, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("loading orders failed", zap.Error(err))
		view.LoadError = true
		view.Toast = &Toast{Kind: "error", Title: "Error", Message: "Gagal memuat data pesanan"}
		h.render(w, "admin.html", view)
		return
	}

	view.Stats = domain.CountStatuses(orders)
	view.Rows = make([]adminRow, 0, len(orders))
	for _, o := range orders {
		status := domain.NormalizeStatus(o.Status)
		view.Rows = append(view.Rows, adminRow{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			PhoneNumber:  o.PhoneNumber,
			Services:     domain.DecodeServices(o.Services).List(),
			PadQuantity:  o.PadQuantity,
			PickupMethod: o.PickupMethod,
			Status:       string(status),
			StatusLabel:  status.Label(),
			CreatedAt:    formatDateID(o.CreatedAt),
		})
	}

	h.render(w, "admin.html", view)
}

func (h *Handler) ConfirmDeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	view := confirmDeleteView{
		Page: h.newPage(r, nil),
		ID:   id,
	}
	h.render(w, "confirm_delete.html", view)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if _, notFound := apperrors.IsNotFoundError(err); notFound {
			h.redirectAdmin(w, r, "error", "Pesanan tidak ditemukan")
			return
		}
		h.logger.Error("deleting order failed", zap.Uint("orderId", id), zap.Error(err))
		h.redirectAdmin(w, r, "error", "Gagal menghapus pesanan")
		return
	}

	h.redirectAdmin(w, r, "success", "Pesanan berhasil dihapus")
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	status := domain.Status(r.PostForm.Get("status"))
	if err := h.svc.UpdateStatus(r.Context(), id, status); err != nil {
		if _, ok := apperrors.IsValidationError(err); ok {
			h.redirectAdmin(w, r, "error", "Status tidak valid")
			return
		}
		if _, ok := apperrors.IsNotFoundError(err); ok {
			h.redirectAdmin(w, r, "error", "Pesanan tidak ditemukan")
			return
		}
		h.logger.Error("updating status failed", zap.Uint("orderId", id), zap.Error(err))
		h.redirectAdmin(w, r, "error", "Gagal mengupdate status")
		return
	}

	h.redirectAdmin(w, r, "success", fmt.Sprintf("Status berhasil diupdate ke %q", status.Label()))
}

// ToggleTheme flips the theme cookie and returns to the referring page. No
// cookie means "follow the system preference", so the first toggle always
// lands on light.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := "light"
	if cookie, err := r.Cookie(themeCookie); err == nil && cookie.Value == "light" {
		next = "dark"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
	})

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

const themeCookie = "theme"

func (h *Handler) newPage(r *http.Request, toast *Toast) Page {
	theme := ""
	if cookie, err := r.Cookie(themeCookie); err == nil {
		if cookie.Value == "light" || cookie.Value == "dark" {
			theme = cookie.Value
		}
	}
	return Page{Theme: theme, Toast: toast}
}

// flashToast reads a one-shot notification passed through redirect query
// parameters.
func flashToast(r *http.Request) *Toast {
	msg := r.URL.Query().Get("msg")
	if msg == "" {
		return nil
	}
	kind := r.URL.Query().Get("kind")
	if kind != "error" {
		kind = "success"
	}
	title := "Berhasil"
	if kind == "error" {
		title = "Error"
	}
	return &Toast{Kind: kind, Title: title, Message: msg}
}

func (h *Handler) redirectAdmin(w http.ResponseWriter, r *http.Request, kind, msg string) {
	params := url.Values{"kind": {kind}, "msg": {msg}}
	http.Redirect(w, r, "/admin?"+params.Encode(), http.StatusSeeOther)
}

func (h *Handler) orderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil || id == 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("rendering template failed", zap.String("template", name), zap.Error(err))
	}
}
