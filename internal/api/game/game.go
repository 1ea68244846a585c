package game

import (
	"errors"
	"log"
	"net/http"

	dto "slot_machine_backend/internal/api/dto/game"
	"slot_machine_backend/internal/converter"
	"slot_machine_backend/internal/model"
	"slot_machine_backend/internal/service"
	"slot_machine_backend/pkg/req"
	"slot_machine_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin - платный спин со ставкой risk
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpin(payload))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Deposit - пополнение баланса монет
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// ConvertToReal - обмен монет на реальную монету
func (h *Handler) ConvertToReal(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.ConvertToReal(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// ConvertToSoft - обмен реальной монеты на монеты
func (h *Handler) ConvertToSoft(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.ConvertToSoft(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// CheckData - снимок состояния игрока
func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// writeDomainError - отклонения экономики уходят клиенту как 4xx
// с текстом причины, все прочее - 500
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidStake):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, model.ErrFeatureDisabled):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Println("game handler error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
