package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/format"
	"cosmosexplorer/internal/http/handler/middleware"
	"cosmosexplorer/internal/http/payload"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	GetDashboard           = "GET /explorer/dashboard"
	GetBlocks              = "GET /explorer/blocks"
	LoadMoreBlocks         = "POST /explorer/blocks/more"
	GetLatestBlock         = "GET /explorer/blocks/latest"
	GetBlock               = "GET /explorer/blocks/{hash}"
	GetTransactions        = "GET /explorer/transactions"
	LoadMoreTransactions   = "POST /explorer/transactions/more"
	GetPendingTransactions = "GET /explorer/transactions/pending"
	CreateTransfer         = "POST /explorer/transfers"
	EstimateTransferFee    = "POST /explorer/transfers/estimate"
	GetWallets             = "GET /explorer/wallets"
	CreateWallet           = "POST /explorer/wallets"
	GetWallet              = "GET /explorer/wallets/{address}"
	DeleteWallet           = "DELETE /explorer/wallets/{address}"
	GetMining              = "GET /explorer/mining"
	GetMiner               = "GET /explorer/mining/miners/{address}"
	RegisterMiner          = "POST /explorer/mining/miners"
	StartMining            = "POST /explorer/mining/start"
	StopMining             = "POST /explorer/mining/stop"
	UnregisterMiner        = "DELETE /explorer/mining/miners/{address}"
	GetTokens              = "GET /explorer/tokens"
	TokenOperation         = "POST /explorer/tokens/{operation}"
	GetNotifications       = "GET /explorer/notifications"
	DismissNotification    = "DELETE /explorer/notifications/{id}"
)

type ExplorerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	explorer         ExplorerService
	notifications    NotificationStore
	now              func() time.Time
}

// NewExplorerHandler is a constructor function for the ExplorerHandler type.
func NewExplorerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, explorerService ExplorerService, notifications NotificationStore) *ExplorerHandler {
	return &ExplorerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		explorer:         explorerService,
		notifications:    notifications,
		now:              time.Now,
	}
}

func (h *ExplorerHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	snapshot, err := h.explorer.DashboardView(r.Context(), refresh(r))
	data := presentDashboard(snapshot, h.now())

	if !snapshot.Loaded && err != nil {
		h.fail(w, Response{Message: "Could not load dashboard", Data: data}, err, http.StatusBadGateway, GetDashboard, requestId)
		return
	}
	h.respond(w, Response{Data: data}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetBlocks(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := h.listRequest(w, r, GetBlocks, requestId)
	if !ok {
		return
	}
	snapshot, err := h.explorer.BlocksView(r.Context(), refresh(r), list.ToQuery())
	respondList(h, w, presentList(snapshot, list.ToQuery(), presentBlock(h.now())),
		"Could not load blocks", err, GetBlocks, requestId)
}

func (h *ExplorerHandler) HandleLoadMoreBlocks(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := h.listRequest(w, r, LoadMoreBlocks, requestId)
	if !ok {
		return
	}
	snapshot, err := h.explorer.MoreBlocks(r.Context(), list.ToQuery())
	data := presentList(snapshot, list.ToQuery(), presentBlock(h.now()))
	if err != nil {
		h.fail(w, Response{Message: "Could not load more blocks", Data: data}, err, failureStatus(err), LoadMoreBlocks, requestId)
		return
	}
	h.respond(w, Response{Data: data}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetLatestBlock(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	block, err := h.explorer.LatestBlock(r.Context())
	if err != nil {
		h.fail(w, Response{Message: "Could not load the latest block"}, err, failureStatus(err), GetLatestBlock, requestId)
		return
	}
	h.respond(w, Response{Data: presentBlock(h.now())(block)}, http.StatusOK, requestId)
}

// HandleGetBlock looks a block up by its full hash.
func (h *ExplorerHandler) HandleGetBlock(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	block, err := h.explorer.LookupBlock(r.Context(), r.PathValue("hash"))
	if err != nil {
		h.fail(w, Response{Message: "Could not find block"}, err, failureStatus(err), GetBlock, requestId)
		return
	}
	h.respond(w, Response{Data: presentBlock(h.now())(block)}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := h.listRequest(w, r, GetTransactions, requestId)
	if !ok {
		return
	}
	snapshot, err := h.explorer.TransactionsView(r.Context(), refresh(r), list.ToQuery())
	respondList(h, w, presentList(snapshot, list.ToQuery(), presentTransaction(h.now())),
		"Could not load transactions", err, GetTransactions, requestId)
}

func (h *ExplorerHandler) HandleLoadMoreTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := h.listRequest(w, r, LoadMoreTransactions, requestId)
	if !ok {
		return
	}
	snapshot, err := h.explorer.MoreTransactions(r.Context(), list.ToQuery())
	data := presentList(snapshot, list.ToQuery(), presentTransaction(h.now()))
	if err != nil {
		h.fail(w, Response{Message: "Could not load more transactions", Data: data}, err, failureStatus(err), LoadMoreTransactions, requestId)
		return
	}
	h.respond(w, Response{Data: data}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetPendingTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	snapshot, err := h.explorer.PendingView(r.Context(), refresh(r))
	data := map[string]any{
		"items":     mapRows(snapshot.Value, presentTransaction(h.now())),
		"state":     snapshot.State,
		"loaded":    snapshot.Loaded,
		"updatedAt": snapshot.UpdatedAt,
	}
	if !snapshot.Loaded && err != nil {
		h.fail(w, Response{Message: "Could not load pending transactions", Data: data}, err, http.StatusBadGateway, GetPendingTransactions, requestId)
		return
	}
	h.respond(w, Response{Data: data}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleCreateTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.TransferRequest
	if !h.decode(w, r, &req, CreateTransfer, requestId) {
		return
	}
	state, err := h.explorer.SubmitTransfer(r.Context(), req.ToInput())
	h.submitted(w, state, err, "Transfer submitted", http.StatusCreated, CreateTransfer, requestId)
}

func (h *ExplorerHandler) HandleEstimateTransferFee(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.TransferRequest
	if !h.decode(w, r, &req, EstimateTransferFee, requestId) {
		return
	}
	estimate, err := h.explorer.EstimateFee(r.Context(), req.ToInput())
	if err != nil {
		h.fail(w, Response{Message: "Could not estimate fee", Data: req.ToInput()}, err, failureStatus(err), EstimateTransferFee, requestId)
		return
	}
	h.respond(w, Response{Data: map[string]any{
		"fee":       estimate.Fee,
		"total":     estimate.Total,
		"feeText":   format.Balance(estimate.Fee),
		"totalText": format.Balance(estimate.Total),
	}}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetWallets(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := h.listRequest(w, r, GetWallets, requestId)
	if !ok {
		return
	}
	snapshot, err := h.explorer.WalletsView(r.Context(), refresh(r), list.ToQuery())
	respondList(h, w, presentList(snapshot, list.ToQuery(), presentWallet),
		"Could not load wallets", err, GetWallets, requestId)
}

func (h *ExplorerHandler) HandleCreateWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	state, err := h.explorer.SubmitCreateWallet(r.Context())
	h.submitted(w, state, err, "Wallet created", http.StatusCreated, CreateWallet, requestId)
}

func (h *ExplorerHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	detail, err := h.explorer.WalletDetail(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, Response{Message: "Could not load wallet"}, err, failureStatus(err), GetWallet, requestId)
		return
	}

	wallet := presentWallet(detail.Wallet)
	wallet.BalanceText = format.Balance(detail.Balance)
	h.respond(w, Response{Data: map[string]any{
		"wallet":  wallet,
		"balance": detail.Balance,
		"history": mapRows(detail.History, presentTransaction(h.now())),
	}}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleDeleteWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	in := explorer.WalletInput{Address: r.PathValue("address")}
	state, err := h.explorer.SubmitDeleteWallet(r.Context(), in)
	h.submitted(w, state, err, "Wallet deleted", http.StatusOK, DeleteWallet, requestId)
}

func (h *ExplorerHandler) HandleGetMining(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := h.listRequest(w, r, GetMining, requestId)
	if !ok {
		return
	}
	page, err := h.explorer.MiningView(r.Context(), refresh(r), list.ToQuery())
	data := presentMining(page, list.ToQuery(), h.now())
	if !page.Summary.Loaded && err != nil {
		h.fail(w, Response{Message: "Could not load mining data", Data: data}, err, http.StatusBadGateway, GetMining, requestId)
		return
	}
	h.respond(w, Response{Data: data}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetMiner(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	miner, err := h.explorer.MinerDetail(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, Response{Message: "Could not load miner"}, err, failureStatus(err), GetMiner, requestId)
		return
	}
	h.respond(w, Response{Data: presentMiner(h.now())(miner)}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleRegisterMiner(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterMinerRequest
	if !h.decode(w, r, &req, RegisterMiner, requestId) {
		return
	}
	state, err := h.explorer.SubmitRegisterMiner(r.Context(), req.ToInput())
	h.submitted(w, state, err, "Miner registered", http.StatusCreated, RegisterMiner, requestId)
}

func (h *ExplorerHandler) HandleStartMining(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.MinerRequest
	if !h.decode(w, r, &req, StartMining, requestId) {
		return
	}
	state, err := h.explorer.SubmitStartMining(r.Context(), req.ToInput())
	h.submitted(w, state, err, "Mining started", http.StatusOK, StartMining, requestId)
}

// HandleStopMining stops the given miner, or the current one when the body is empty.
func (h *ExplorerHandler) HandleStopMining(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.MinerRequest
	if !h.decode(w, r, &req, StopMining, requestId) {
		return
	}
	state, err := h.explorer.SubmitStopMining(r.Context(), req.ToInput())
	h.submitted(w, state, err, "Mining stopped", http.StatusOK, StopMining, requestId)
}

func (h *ExplorerHandler) HandleUnregisterMiner(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	in := explorer.MinerInput{Address: r.PathValue("address")}
	state, err := h.explorer.SubmitUnregisterMiner(r.Context(), in)
	h.submitted(w, state, err, "Miner unregistered", http.StatusOK, UnregisterMiner, requestId)
}

func (h *ExplorerHandler) HandleGetTokens(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := h.listRequest(w, r, GetTokens, requestId)
	if !ok {
		return
	}
	page, err := h.explorer.TokensView(r.Context(), refresh(r), list.ToQuery())
	data := presentTokens(page, list.ToQuery())
	if !data.Loaded && !data.Holders.Loaded && err != nil {
		h.fail(w, Response{Message: "Could not load token data", Data: data}, err, http.StatusBadGateway, GetTokens, requestId)
		return
	}
	h.respond(w, Response{Data: data}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleTokenOperation(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.TokenOperationRequest
	if !h.decode(w, r, &req, TokenOperation, requestId) {
		return
	}
	in := req.ToInput(r.PathValue("operation"))
	message := "Tokens minted"
	if in.Operation == explorer.OperationBurn {
		message = "Tokens burned"
	}
	state, err := h.explorer.SubmitTokenOperation(r.Context(), in)
	h.submitted(w, state, err, message, http.StatusOK, TokenOperation, requestId)
}

func (h *ExplorerHandler) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, Response{Data: map[string]any{
		"notifications": h.notifications.Active(),
	}}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleDismissNotification(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.fail(w, Response{Message: "Could not dismiss notification"},
			fmt.Errorf("parse notification id: %w", err), http.StatusBadRequest, DismissNotification, requestId)
		return
	}
	if !h.notifications.Dismiss(id) {
		h.respond(w, Response{
			Message: "Could not dismiss notification",
			Error:   "notification not found",
		}, http.StatusNotFound, requestId)
		return
	}
	h.respond(w, Response{Message: "Notification dismissed"}, http.StatusOK, requestId)
}

// submitted answers a form submit. A failure carries the form state so the
// caller gets its input back.
func (h *ExplorerHandler) submitted(w http.ResponseWriter, state any, err error, message string, code int, route, requestId string) {
	if err != nil {
		h.fail(w, Response{Message: "Request failed", Data: state}, err, failureStatus(err), route, requestId)
		return
	}

	h.logs.Infow("form submitted",
		"handler", route,
		"request_id", requestId)
	h.respond(w, Response{Message: message, Data: state}, code, requestId)
}

// refresh reports whether the caller asked for fresh data with ?refresh=true.
func refresh(r *http.Request) bool {
	return r.URL.Query().Get("refresh") == "true"
}

func (h *ExplorerHandler) listRequest(w http.ResponseWriter, r *http.Request, route, requestId string) (payload.ListRequest, bool) {
	values := r.URL.Query()
	list := payload.ListRequest{
		Search: values.Get("search"),
		Type:   values.Get("type"),
	}
	if err := list.Validate(); err != nil {
		h.fail(w, Response{Message: "Request failed"},
			fmt.Errorf("validate query parameters: %w", err), http.StatusBadRequest, route, requestId)
		return payload.ListRequest{}, false
	}
	return list, true
}

func (h *ExplorerHandler) decode(w http.ResponseWriter, r *http.Request, object any, route, requestId string) bool {
	if err := h.requestValidator.DecodeJSONPayload(r, object); err != nil {
		h.fail(w, Response{Message: "Request failed"},
			fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest, route, requestId)
		return false
	}
	return true
}

// respondList answers 502 only when nothing was ever loaded. Later failures
// keep the last rows and report the error inside the data.
func respondList[R any](h *ExplorerHandler, w http.ResponseWriter, data listData[R], message string, err error, route, requestId string) {
	if !data.Loaded && err != nil {
		h.fail(w, Response{Message: message, Data: data}, err, http.StatusBadGateway, route, requestId)
		return
	}
	h.respond(w, Response{Data: data}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) fail(w http.ResponseWriter, resp Response, err error, code int, route, requestId string) {
	resp.Error = describe(err)
	h.respond(w, resp, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

// describe prefers the text the chain server gave.
func describe(err error) string {
	if msg, ok := chainapi.ServerMessage(err); ok {
		return msg
	}
	var apiErr *chainapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func failureStatus(err error) int {
	var apiErr *chainapi.Error
	switch {
	case errors.Is(err, explorer.ErrSubmitting):
		return http.StatusConflict
	case errors.Is(err, explorer.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, explorer.ErrNotBlockHash):
		return http.StatusBadRequest
	case chainapi.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &apiErr) && apiErr.Kind == chainapi.KindRejected:
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
