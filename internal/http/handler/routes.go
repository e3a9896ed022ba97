package handler

import "net/http"

var (
	Authenticate          = "POST /api/authenticate"
	GetBalance            = "GET /api/accounts/{address}/balance"
	GetTransactions       = "GET /api/accounts/{address}/transactions"
	GetStats              = "GET /api/accounts/{address}/stats"
	GetVolume             = "GET /api/accounts/{address}/volume"
	RefreshAccount        = "POST /api/accounts/{address}/refresh"
	GetTransactionDetails = "GET /api/transactions/{hash}"
	SubmitTransfer        = "POST /api/transfers"
	GetTransfer           = "GET /api/transfers/{id}"
)

// AuthTokenHeader carries the operator token on guarded routes.
const AuthTokenHeader = "AUTH_TOKEN"

func (h *DashboardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(GetBalance, h.HandleGetBalance)
	mux.HandleFunc(GetTransactions, h.HandleGetTransactions)
	mux.HandleFunc(GetStats, h.HandleGetStats)
	mux.HandleFunc(GetVolume, h.HandleGetVolume)
	mux.HandleFunc(RefreshAccount, h.HandleRefreshAccount)
	mux.HandleFunc(GetTransactionDetails, h.HandleGetTransactionDetails)
	mux.HandleFunc(SubmitTransfer, h.HandleSubmitTransfer)
	mux.HandleFunc(GetTransfer, h.HandleGetTransfer)
}
