package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"usdcdash/internal/http/handler/middleware"
	"usdcdash/internal/http/payload"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	dashboard        DashboardService
	transfers        TransferService
	auth             AuthService
}

func NewDashboardHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, dashboard DashboardService, transfers TransferService, auth AuthService) *DashboardHandler {
	return &DashboardHandler{
		logs:             logger,
		requestValidator: requestValidator,
		dashboard:        dashboard,
		transfers:        transfers,
		auth:             auth,
	}
}

func (h *DashboardHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		resp, _ := errorResponse("Could not authenticate", fmt.Errorf("invalid request payload: %w", err))
		h.respond(w, resp, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	h.respond(w, Response{Data: map[string]string{"token": token}}, http.StatusOK, requestId)
}

func (h *DashboardHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, ok := h.address(w, r, GetBalance, requestId)
	if !ok {
		return
	}

	balance, err := h.dashboard.Balance(r.Context(), address)
	if err != nil {
		h.fail(w, "Could not retrieve balance", err, GetBalance, requestId)
		return
	}

	h.respond(w, Response{Data: balance}, http.StatusOK, requestId)
}

func (h *DashboardHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, ok := h.address(w, r, GetTransactions, requestId)
	if !ok {
		return
	}

	filter, err := payload.ParseFilter(r.URL.Query())
	if err != nil {
		h.fail(w, "Could not retrieve transactions", err, GetTransactions, requestId)
		return
	}

	transactions, err := h.dashboard.Transactions(r.Context(), address, filter)
	if err != nil {
		h.fail(w, "Could not retrieve transactions", err, GetTransactions, requestId)
		return
	}

	h.logs.Infow("transactions retrieved",
		"address", address,
		"count", len(transactions),
		"handler", GetTransactions,
		"request_id", requestId)

	h.respond(w, Response{Data: transactions}, http.StatusOK, requestId)
}

func (h *DashboardHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, ok := h.address(w, r, GetStats, requestId)
	if !ok {
		return
	}

	stats, err := h.dashboard.Stats(r.Context(), address)
	if err != nil {
		h.fail(w, "Could not compute stats", err, GetStats, requestId)
		return
	}

	h.respond(w, Response{Data: stats}, http.StatusOK, requestId)
}

func (h *DashboardHandler) HandleGetVolume(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, ok := h.address(w, r, GetVolume, requestId)
	if !ok {
		return
	}

	volume, err := h.dashboard.Volume(r.Context(), address)
	if err != nil {
		h.fail(w, "Could not compute volume", err, GetVolume, requestId)
		return
	}

	h.respond(w, Response{Data: volume}, http.StatusOK, requestId)
}

func (h *DashboardHandler) HandleRefreshAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, ok := h.address(w, r, RefreshAccount, requestId)
	if !ok {
		return
	}

	if err := h.dashboard.Refresh(r.Context(), address); err != nil {
		h.fail(w, "Could not refresh account", err, RefreshAccount, requestId)
		return
	}

	h.respond(w, Response{Message: "Account refreshed", Data: map[string]string{"address": address}}, http.StatusOK, requestId)
}

func (h *DashboardHandler) HandleGetTransactionDetails(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	hash := r.PathValue("hash")
	if err := payload.ValidateHash(hash); err != nil {
		h.fail(w, "Could not retrieve transaction", err, GetTransactionDetails, requestId)
		return
	}

	details, err := h.dashboard.TransactionDetails(r.Context(), hash)
	if err != nil {
		h.fail(w, "Could not retrieve transaction", err, GetTransactionDetails, requestId)
		return
	}

	h.respond(w, Response{Data: details}, http.StatusOK, requestId)
}

func (h *DashboardHandler) HandleSubmitTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	operator, err := h.auth.Authorize(r.Header.Get(AuthTokenHeader))
	if err != nil {
		h.fail(w, "Authentication failed", err, SubmitTransfer, requestId)
		return
	}

	var req payload.TransferRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not submit transfer",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", SubmitTransfer,
			"request_id", requestId)
		return
	}

	transfer, err := h.transfers.Submit(r.Context(), req.ToCore())
	if err != nil {
		resp, code := errorResponse("Transfer failed", err)
		if transfer.ID != "" {
			resp.Data = transfer
		}
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("transfer submission failed",
			"error", err,
			"operator", operator,
			"handler", SubmitTransfer,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transfer submitted",
		"transfer_id", transfer.ID,
		"tx_hash", transfer.TxHash,
		"operator", operator,
		"handler", SubmitTransfer,
		"request_id", requestId)

	h.respond(w, Response{Data: transfer}, http.StatusAccepted, requestId)
}

func (h *DashboardHandler) HandleGetTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	transfer, err := h.transfers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, "Could not retrieve transfer", err, GetTransfer, requestId)
		return
	}

	h.respond(w, Response{Data: transfer}, http.StatusOK, requestId)
}

func (h *DashboardHandler) address(w http.ResponseWriter, r *http.Request, route, requestId string) (string, bool) {
	address := r.PathValue("address")
	if err := payload.ValidateAddress(address); err != nil {
		h.fail(w, "Invalid address", err, route, requestId)
		return "", false
	}
	return address, true
}

func (h *DashboardHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	resp, code := errorResponse(message, err)
	h.respond(w, resp, code, requestId)

	if code >= http.StatusInternalServerError {
		h.logs.Errorw(message,
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}
	h.logs.Warnw(message,
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *DashboardHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
