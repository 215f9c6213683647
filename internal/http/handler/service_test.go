package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/chainapi/chaintest"
	chainfake "cosmosexplorer/internal/chainapi/fake"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/http/handler"
	"cosmosexplorer/internal/http/handler/fake"
	"cosmosexplorer/internal/http/payload"
	"cosmosexplorer/internal/listview"
	"cosmosexplorer/internal/notify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ExplorerHandler with a stubbed explorer", func() {
	var (
		eh           *handler.ExplorerHandler
		fakeExplorer *fake.ExplorerService
		bus          *notify.Bus
		w            *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		bus = notify.NewBus(logger, time.Second, notify.WithScheduler(neverExpire))
		DeferCleanup(bus.Close)

		fakeExplorer = new(fake.ExplorerService)
		validator := new(fake.RequestValidator)
		validator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		eh = handler.NewExplorerHandler(logger, validator, fakeExplorer, bus)
	})

	Describe("HandleGetDashboard", func() {
		It("answers bad gateway when nothing was ever loaded", func() {
			fakeExplorer.DashboardViewReturns(listview.PanelSnapshot[explorer.DashboardData]{}, errors.New("fake-error"))

			eh.HandleGetDashboard(w, jsonRequest(http.MethodGet, "/explorer/dashboard?refresh=true", ""))

			resp := decodeResponse(w, nil)
			Expect(w.Code).To(Equal(http.StatusBadGateway))
			Expect(resp.Error).To(Equal("fake-error"))
			Expect(fakeExplorer.DashboardViewCallCount()).To(Equal(1))
			_, refresh := fakeExplorer.DashboardViewArgsForCall(0)
			Expect(refresh).To(BeTrue())
		})

		It("serves the last good data when a refresh fails", func() {
			fakeExplorer.DashboardViewReturns(listview.PanelSnapshot[explorer.DashboardData]{
				Value:  explorer.DashboardData{Info: chainapi.BlockchainInfo{Length: 3}},
				Loaded: true,
				Error:  "fake-error",
			}, errors.New("fake-error"))

			eh.HandleGetDashboard(w, jsonRequest(http.MethodGet, "/explorer/dashboard", ""))

			var data struct {
				Stats struct {
					Height int64 `json:"height"`
				} `json:"stats"`
				Error string `json:"error"`
			}
			decodeResponse(w, &data)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(data.Stats.Height).To(Equal(int64(2)))
			Expect(data.Error).To(Equal("fake-error"))
			_, refresh := fakeExplorer.DashboardViewArgsForCall(0)
			Expect(refresh).To(BeFalse())
		})
	})

	Describe("failure statuses", func() {
		It("answers bad request for a malformed hash", func() {
			fakeExplorer.LookupBlockReturns(chainapi.Block{}, explorer.ErrNotBlockHash)
			req := jsonRequest(http.MethodGet, "/explorer/blocks/xyz", "")
			req.SetPathValue("hash", "xyz")

			eh.HandleGetBlock(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			_, hash := fakeExplorer.LookupBlockArgsForCall(0)
			Expect(hash).To(Equal("xyz"))
		})

		It("answers bad gateway for a network failure", func() {
			fakeExplorer.LatestBlockReturns(chainapi.Block{}, &chainapi.Error{
				Kind:    chainapi.KindNetwork,
				Message: "network connection failed, check your network settings",
			})

			eh.HandleGetLatestBlock(w, jsonRequest(http.MethodGet, "/explorer/blocks/latest", ""))

			resp := decodeResponse(w, nil)
			Expect(w.Code).To(Equal(http.StatusBadGateway))
			Expect(resp.Error).To(Equal("network connection failed, check your network settings"))
		})

		It("answers internal server error for anything else", func() {
			fakeExplorer.MinerDetailReturns(chainapi.Miner{}, errors.New("fake-error"))
			req := jsonRequest(http.MethodGet, "/explorer/mining/miners/addr", "")
			req.SetPathValue("address", "addr")

			eh.HandleGetMiner(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("HandleCreateTransfer", func() {
		It("answers conflict while another transfer is pending", func() {
			in := explorer.TransferInput{From: "addrA", To: "addrB", Amount: "7"}
			fakeExplorer.SubmitTransferReturns(explorer.FormState[explorer.TransferInput]{
				Input:      in,
				Open:       true,
				Submitting: true,
			}, explorer.ErrSubmitting)

			eh.HandleCreateTransfer(w, jsonRequest(http.MethodPost, "/explorer/transfers",
				`{"fromAddress":"addrA","toAddress":"addrB","amount":7}`))

			var state explorer.FormState[explorer.TransferInput]
			resp := decodeResponse(w, &state)
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(resp.Error).To(Equal(explorer.ErrSubmitting.Error()))
			Expect(state.Input).To(Equal(in))

			Expect(fakeExplorer.SubmitTransferCallCount()).To(Equal(1))
			_, sent := fakeExplorer.SubmitTransferArgsForCall(0)
			Expect(sent).To(Equal(in))
		})
	})

	Describe("HandleTokenOperation", func() {
		It("passes the operation from the path", func() {
			fakeExplorer.SubmitTokenOperationReturns(explorer.FormState[explorer.TokenOperationInput]{}, nil)
			req := jsonRequest(http.MethodPost, "/explorer/tokens/burn", `{"address":"addrA","amount":2}`)
			req.SetPathValue("operation", explorer.OperationBurn)

			eh.HandleTokenOperation(w, req)

			resp := decodeResponse(w, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(resp.Message).To(Equal("Tokens burned"))
			_, in := fakeExplorer.SubmitTokenOperationArgsForCall(0)
			Expect(in).To(Equal(explorer.TokenOperationInput{Operation: explorer.OperationBurn, Wallet: "addrA", Amount: "2"}))
		})
	})
})

var _ = Describe("ExplorerHandler with concurrent submits", func() {
	var (
		eh         *handler.ExplorerHandler
		server     *chaintest.Server
		alice, bob string
		entered    chan struct{}
		release    chan struct{}
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		server = chaintest.NewServer()
		DeferCleanup(server.Close)
		alice = server.AddWallet(50)
		bob = server.AddWallet(0)

		bus := notify.NewBus(logger, time.Second, notify.WithScheduler(neverExpire))
		DeferCleanup(bus.Close)

		entered = make(chan struct{}, 1)
		release = make(chan struct{})
		doer := new(chainfake.HTTPDoer)
		doer.DoStub = func(r *http.Request) (*http.Response, error) {
			if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/transfers") {
				entered <- struct{}{}
				<-release
			}
			return http.DefaultClient.Do(r)
		}

		client := chainapi.NewClient(logger, server.URL, doer)
		exp := explorer.New(logger, client, bus, explorer.Options{
			DashboardBlocks:       5,
			DashboardTransactions: 10,
			BlocksPage:            20,
			TransactionsPage:      50,
		})
		eh = handler.NewExplorerHandler(logger, payload.Decoder{}, exp, bus)
	})

	It("sends only the first transfer and hands the second its own input back", func() {
		first := httptest.NewRecorder()
		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			eh.HandleCreateTransfer(first, jsonRequest(http.MethodPost, "/explorer/transfers",
				`{"fromAddress":"`+alice+`","toAddress":"`+bob+`","amount":5}`))
		}()
		Eventually(entered).Should(Receive())

		second := httptest.NewRecorder()
		eh.HandleCreateTransfer(second, jsonRequest(http.MethodPost, "/explorer/transfers",
			`{"fromAddress":"`+alice+`","toAddress":"`+bob+`","amount":7}`))

		var state explorer.FormState[explorer.TransferInput]
		decodeResponse(second, &state)
		Expect(second.Code).To(Equal(http.StatusConflict))
		Expect(state.Input).To(Equal(explorer.TransferInput{From: alice, To: bob, Amount: "7"}))

		close(release)
		Eventually(done).Should(BeClosed())
		Expect(first.Code).To(Equal(http.StatusCreated))
		Expect(server.Balance(bob)).To(Equal(5.0))

		transfers := 0
		for _, r := range server.Requests() {
			if r == "POST /transfers" {
				transfers++
			}
		}
		Expect(transfers).To(Equal(1))
	})
})
