package chainapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/chainapi/chaintest"
	"cosmosexplorer/internal/chainapi/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		server *chaintest.Server
		client *chainapi.Client
		ctx    context.Context
	)

	BeforeEach(func() {
		server = chaintest.NewServer()
		DeferCleanup(server.Close)
		ctx = context.Background()
		client = chainapi.NewClient(zap.NewNop().Sugar(), server.URL+"/", &http.Client{Timeout: time.Second})
	})

	Describe("Blocks", func() {
		BeforeEach(func() {
			server.AddBlocks(25)
		})

		It("requests the page with limit and offset", func() {
			page, err := client.Blocks(ctx, 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Blocks).To(HaveLen(20))
			Expect(page.HasMore).To(BeTrue())
			Expect(page.Total).To(Equal(int64(25)))
			Expect(page.Blocks[0].Height).To(Equal(int64(24)))
			Expect(server.Requests()).To(ConsistOf("GET /blockchain/blocks?limit=20&offset=0"))
		})

		It("reports the last page", func() {
			page, err := client.Blocks(ctx, 20, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Blocks).To(HaveLen(5))
			Expect(page.HasMore).To(BeFalse())
		})

		It("links each block to its predecessor", func() {
			page, err := client.Blocks(ctx, 3, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Blocks[0].PreviousHash).To(Equal(page.Blocks[1].Hash))
			Expect(page.Blocks[1].PreviousHash).To(Equal(page.Blocks[2].Hash))
		})
	})

	Describe("Block", func() {
		It("fetches a block by hash", func() {
			server.AddBlocks(2)
			latest, err := client.LatestBlock(ctx)
			Expect(err).NotTo(HaveOccurred())

			block, err := client.Block(ctx, latest.Hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(block).To(Equal(latest))
		})

		It("classifies an unknown hash as not found", func() {
			_, err := client.Block(ctx, "deadbeef")
			Expect(err).To(MatchError(chainapi.ErrNotFound))
			Expect(chainapi.IsNotFound(err)).To(BeTrue())
			Expect(chainapi.Message(err)).To(Equal("block not found"))
		})
	})

	Describe("Transactions", func() {
		BeforeEach(func() {
			server.AddTransactions(3, chainapi.TxMint)
			server.AddTransactions(2, chainapi.TxBurn)
		})

		It("passes the type filter to the server", func() {
			page, err := client.Transactions(ctx, 10, chainapi.TxMint)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Transactions).To(HaveLen(3))
			Expect(page.Total).To(Equal(int64(3)))
			Expect(server.Requests()).To(ConsistOf("GET /blockchain/transactions?limit=10&type=mint"))
		})

		It("omits an empty type", func() {
			page, err := client.Transactions(ctx, 4, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Transactions).To(HaveLen(4))
			Expect(page.Total).To(Equal(int64(5)))
			Expect(server.Requests()).To(ConsistOf("GET /blockchain/transactions?limit=4"))
		})

		It("lists pending transfers", func() {
			list, err := client.PendingTransfers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Transactions).To(BeEmpty())
			Expect(server.Requests()).To(ConsistOf("GET /transfers/pending"))
		})
	})

	Describe("mutations", func() {
		var alice, bob string

		BeforeEach(func() {
			alice = server.AddWallet(50)
			bob = server.AddWallet(0)
		})

		It("creates a transfer", func() {
			receipt, err := client.Transfer(ctx, alice, bob, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt.Transaction.Type).To(Equal(chainapi.TxTransfer))
			Expect(receipt.Transaction.Amount).To(Equal(5.0))
			Expect(server.Balance(alice)).To(Equal(45.0))
			Expect(server.Balance(bob)).To(Equal(5.0))
		})

		It("surfaces the server's rejection message", func() {
			_, err := client.Transfer(ctx, bob, alice, 5)
			Expect(err).To(MatchError(chainapi.ErrRejected))
			msg, ok := chainapi.ServerMessage(err)
			Expect(ok).To(BeTrue())
			Expect(msg).To(Equal("insufficient balance"))
		})

		It("registers and starts a miner", func() {
			_, err := client.RegisterMiner(ctx, alice, "rig")
			Expect(err).NotTo(HaveOccurred())

			started, err := client.StartMining(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(started.MinerAddress).To(Equal(alice))

			status, err := client.MiningStatus(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(status.IsMining).To(BeTrue())
			Expect(*status.CurrentMiner).To(Equal(alice))
		})

		It("deletes a wallet", func() {
			_, err := client.DeleteWallet(ctx, bob)
			Expect(err).NotTo(HaveOccurred())

			list, err := client.Wallets(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Wallets).To(HaveLen(1))
			Expect(list.Wallets[0].Address).To(Equal(alice))
		})
	})

	Describe("Balances", func() {
		It("returns the balances it could fetch along with the failures", func() {
			alice := server.AddWallet(7)
			bob := server.AddWallet(3)

			balances, err := client.Balances(ctx, []string{alice, bob, "missing"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`get balance of "missing"`))
			Expect(balances).To(Equal(map[string]float64{alice: 7, bob: 3}))
		})
	})

	Describe("error normalization", func() {
		DescribeTable("error status without a usable body",
			func(status int, body string, expected string) {
				server.Fail("GET /tokens/info", status, body)

				_, err := client.TokenInfo(ctx)
				var apiErr *chainapi.Error
				Expect(errors.As(err, &apiErr)).To(BeTrue())
				Expect(apiErr.Kind).To(Equal(chainapi.KindStatus))
				Expect(apiErr.Status).To(Equal(status))
				Expect(chainapi.Message(err)).To(Equal(expected))
				_, ok := chainapi.ServerMessage(err)
				Expect(ok).To(BeFalse())
			},
			Entry("400", http.StatusBadRequest, "", "invalid request parameters"),
			Entry("401", http.StatusUnauthorized, "", "unauthorized"),
			Entry("403", http.StatusForbidden, "{}", "forbidden"),
			Entry("404", http.StatusNotFound, "not json", "requested resource not found"),
			Entry("500", http.StatusInternalServerError, `{"success":false}`, "internal server error"),
			Entry("other", http.StatusTeapot, "", "request failed (418)"),
		)

		It("prefers the error field over the message field", func() {
			server.Fail("GET /tokens/info", http.StatusConflict, `{"success":false,"error":"locked","message":"try later"}`)

			_, err := client.TokenInfo(ctx)
			Expect(chainapi.Message(err)).To(Equal("locked"))
		})

		It("falls back to the message field", func() {
			server.Fail("POST /tokens/mint", http.StatusBadRequest, `{"success":false,"message":"insufficient supply"}`)

			_, err := client.Mint(ctx, "anyone", 1)
			msg, ok := chainapi.ServerMessage(err)
			Expect(ok).To(BeTrue())
			Expect(msg).To(Equal("insufficient supply"))
		})

		It("treats success false on a 2xx as a rejection", func() {
			server.Fail("GET /mining/status", http.StatusOK, `{"success":false,"message":"node syncing"}`)

			_, err := client.MiningStatus(ctx)
			Expect(err).To(MatchError(chainapi.ErrRejected))
			Expect(chainapi.Message(err)).To(Equal("node syncing"))
		})

		It("rejects a malformed success body", func() {
			server.Fail("GET /mining/status", http.StatusOK, `<html>`)

			_, err := client.MiningStatus(ctx)
			var apiErr *chainapi.Error
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.Kind).To(Equal(chainapi.KindRequest))
		})
	})

	Describe("network failures", func() {
		var (
			fakeDoer *fake.HTTPDoer
			fakeErr  error
		)

		BeforeEach(func() {
			fakeErr = errors.New("connection refused")
			fakeDoer = new(fake.HTTPDoer)
			fakeDoer.DoReturns(nil, fakeErr)
			client = chainapi.NewClient(zap.NewNop().Sugar(), "http://chain.invalid/api", fakeDoer)
		})

		It("classifies a missing response as a network error", func() {
			_, err := client.Info(ctx)
			Expect(err).To(MatchError(chainapi.ErrNetwork))
			Expect(err).To(MatchError(fakeErr))
			Expect(chainapi.Message(err)).To(Equal("network connection failed, check your network settings"))

			Expect(fakeDoer.DoCallCount()).To(Equal(1))
			req := fakeDoer.DoArgsForCall(0)
			Expect(req.URL.String()).To(Equal("http://chain.invalid/api/blockchain/info"))
			Expect(req.Method).To(Equal(http.MethodGet))
		})

		It("sends JSON bodies on mutations", func() {
			_, _ = client.Burn(ctx, "addr", 2)

			req := fakeDoer.DoArgsForCall(0)
			Expect(req.Method).To(Equal(http.MethodPost))
			Expect(req.Header.Get("Content-Type")).To(Equal("application/json"))
		})

		It("escapes path segments", func() {
			_, _ = client.Wallet(ctx, "a/b")

			req := fakeDoer.DoArgsForCall(0)
			Expect(req.URL.EscapedPath()).To(Equal("/api/wallets/a%2Fb"))
		})

		It("times out slow servers as network errors", func() {
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			}))
			DeferCleanup(slow.Close)
			client = chainapi.NewClient(zap.NewNop().Sugar(), slow.URL, &http.Client{Timeout: 20 * time.Millisecond})

			_, err := client.Info(ctx)
			Expect(err).To(MatchError(chainapi.ErrNetwork))
		})
	})
})
