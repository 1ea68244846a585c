package shop

import (
	"errors"
	"log"
	"net/http"

	dto "slot_machine_backend/internal/api/dto/shop"
	"slot_machine_backend/internal/converter"
	"slot_machine_backend/internal/model"
	"slot_machine_backend/internal/service"
	"slot_machine_backend/pkg/req"
	"slot_machine_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ShopService
}

type Handler struct {
	serv service.ShopService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Catalog - каталог фонов с флагами владения игрока
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	items, err := h.serv.Catalog(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCatalogResponse(items))
}

// Purchase - покупка фона
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PurchaseRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Purchase(r.Context(), payload.BackgroundID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// Equip - экипировка фона
func (h *Handler) Equip(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EquipRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Equip(r.Context(), payload.BackgroundID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// writeDomainError - отклонения магазина уходят клиенту как 4xx
// с текстом причины, все прочее - 500
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUnknownCosmetic):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrAlreadyOwned):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, model.ErrNotOwned):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Println("shop handler error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
