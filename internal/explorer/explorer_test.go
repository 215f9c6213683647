package explorer_test

import (
	"context"
	"net/http"
	"strings"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/chainapi/chaintest"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/explorer/fake"
	"cosmosexplorer/internal/listview"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Explorer", func() {
	var (
		server       *chaintest.Server
		fakeNotifier *fake.Notifier
		exp          *explorer.Explorer
		ctx          context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = chaintest.NewServer()
		DeferCleanup(server.Close)
		fakeNotifier = new(fake.Notifier)

		client := chainapi.NewClient(zap.NewNop().Sugar(), server.URL, http.DefaultClient)
		exp = explorer.New(zap.NewNop().Sugar(), client, fakeNotifier, explorer.Options{
			DashboardBlocks:       5,
			DashboardTransactions: 10,
			BlocksPage:            20,
			TransactionsPage:      50,
		})
	})

	Describe("Dashboard", func() {
		BeforeEach(func() {
			server.AddBlocks(7)
			server.AddTransactions(12, chainapi.TxMint)
		})

		It("joins the info, the newest blocks and the newest transactions", func() {
			Expect(exp.Dashboard.Refresh(ctx)).To(Succeed())

			data, loaded := exp.Dashboard.Value()
			Expect(loaded).To(BeTrue())
			Expect(data.Blocks).To(HaveLen(5))
			Expect(data.Transactions).To(HaveLen(10))
			Expect(data.Height()).To(Equal(int64(6)))
			Expect(data.Info.Token.Symbol).To(Equal("COSMO"))
		})

		It("fails the whole refresh when one fetch fails and keeps the old data", func() {
			Expect(exp.Dashboard.Refresh(ctx)).To(Succeed())
			server.AddBlocks(3)
			server.Fail("GET /blockchain/transactions", http.StatusInternalServerError, "")

			Expect(exp.Dashboard.Refresh(ctx)).NotTo(Succeed())

			data, _ := exp.Dashboard.Value()
			Expect(data.Height()).To(Equal(int64(6)))
			Expect(fakeNotifier.ErrorCallCount()).To(Equal(1))
			Expect(fakeNotifier.ErrorArgsForCall(0)).To(Equal("failed to fetch dashboard data: internal server error"))
		})
	})

	Describe("Blocks", func() {
		BeforeEach(func() {
			server.AddBlocks(45)
		})

		It("loads pages of twenty", func() {
			Expect(exp.Blocks.Load(ctx)).To(Succeed())
			Expect(exp.Blocks.LoadMore(ctx)).To(Succeed())
			Expect(exp.Blocks.Items()).To(HaveLen(40))
			Expect(exp.Blocks.Snapshot(listview.Query{}).HasMore).To(BeTrue())
		})

		It("searches the loaded blocks by hash", func() {
			Expect(exp.Blocks.Load(ctx)).To(Succeed())
			target := exp.Blocks.Items()[3]

			found := exp.Blocks.View(listview.Query{Search: strings.ToUpper(target.Hash[:10])})
			Expect(found).To(ContainElement(target))
		})

		It("looks up a block by its full hash", func() {
			latest, err := exp.Blocks.Latest(ctx)
			Expect(err).NotTo(HaveOccurred())

			server.ResetRequests()
			block, err := exp.Blocks.Lookup(ctx, "0x"+latest.Hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Hash).To(Equal(latest.Hash))
			Expect(server.Requests()).To(ConsistOf("GET /blockchain/blocks/" + latest.Hash))
		})

		It("answers from the loaded pages when it can", func() {
			Expect(exp.Blocks.Load(ctx)).To(Succeed())
			target := exp.Blocks.Items()[0]
			server.ResetRequests()

			block, err := exp.Blocks.Lookup(ctx, target.Hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(block).To(Equal(target))
			Expect(server.Requests()).To(BeEmpty())
		})

		It("rejects terms that are not hashes", func() {
			_, err := exp.Blocks.Lookup(ctx, "abc")
			Expect(err).To(MatchError(explorer.ErrNotBlockHash))
		})

		It("reports unknown hashes as not found", func() {
			_, err := exp.Blocks.Lookup(ctx, strings.Repeat("ab", 32))
			Expect(chainapi.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("Transactions", func() {
		BeforeEach(func() {
			server.AddTransactions(100, chainapi.TxTransfer)
			server.AddTransactions(20, chainapi.TxMint)
		})

		It("grows the limit for every further page", func() {
			Expect(exp.Transactions.Load(ctx)).To(Succeed())
			Expect(exp.Transactions.LoadMore(ctx)).To(Succeed())
			Expect(exp.Transactions.LoadMore(ctx)).To(Succeed())

			Expect(exp.Transactions.Items()).To(HaveLen(120))
			Expect(exp.Transactions.Snapshot(listview.Query{}).HasMore).To(BeFalse())
			Expect(server.Requests()).To(Equal([]string{
				"GET /blockchain/transactions?limit=50",
				"GET /blockchain/transactions?limit=100",
				"GET /blockchain/transactions?limit=150",
			}))
		})

		It("filters by type on the client", func() {
			Expect(exp.Transactions.Load(ctx)).To(Succeed())
			server.ResetRequests()

			mints := exp.Transactions.View(listview.Query{Type: chainapi.TxMint})
			Expect(mints).To(HaveLen(20))
			Expect(exp.Transactions.View(listview.Query{Type: chainapi.TxBurn})).To(BeEmpty())
			Expect(server.Requests()).To(BeEmpty())
		})

		It("knows the accepted types", func() {
			Expect(explorer.ValidTransactionType("mine")).To(BeTrue())
			Expect(explorer.ValidTransactionType("all")).To(BeTrue())
			Expect(explorer.ValidTransactionType("stake")).To(BeFalse())
		})
	})

	Describe("Wallets", func() {
		It("fills the balances the list left out", func() {
			alice := server.AddWallet(12.5)
			server.OmitBalances()

			Expect(exp.Wallets.Load(ctx)).To(Succeed())
			wallets := exp.Wallets.Items()
			Expect(wallets).To(HaveLen(1))
			Expect(wallets[0].Balance).NotTo(BeNil())
			Expect(*wallets[0].Balance).To(Equal(12.5))
			Expect(server.Requests()).To(ContainElement("GET /wallets/" + alice + "/balance"))
		})

		It("creates a wallet and reloads the list", func() {
			Expect(exp.Wallets.Load(ctx)).To(Succeed())
			Expect(exp.Wallets.Items()).To(BeEmpty())

			Expect(exp.CreateWallet.Submit(ctx)).To(Succeed())
			Expect(exp.Wallets.Items()).To(HaveLen(1))
			Expect(fakeNotifier.SuccessArgsForCall(0)).To(Equal("wallet created"))
		})

		It("deletes a wallet", func() {
			alice := server.AddWallet(1)
			exp.DeleteWallet.Set(explorer.WalletInput{Address: alice})

			Expect(exp.DeleteWallet.Submit(ctx)).To(Succeed())
			Expect(exp.Wallets.Items()).To(BeEmpty())
		})

		It("shows the detail with the transfer history", func() {
			alice := server.AddWallet(10)
			bob := server.AddWallet(0)
			exp.Transfer.Set(explorer.TransferInput{From: alice, To: bob, Amount: "4"})
			Expect(exp.Transfer.Submit(ctx)).To(Succeed())

			detail, err := exp.Wallets.Detail(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Balance).To(Equal(4.0))
			Expect(detail.History).To(HaveLen(1))
			Expect(*detail.History[0].FromAddress).To(Equal(alice))
		})
	})

	Describe("transfer form", func() {
		var alice, bob string

		BeforeEach(func() {
			alice = server.AddWallet(50)
			bob = server.AddWallet(0)
			Expect(exp.Transactions.Load(ctx)).To(Succeed())
		})

		It("submits, resets, closes and reloads the transactions", func() {
			exp.Transfer.Set(explorer.TransferInput{From: alice, To: bob, Amount: "5"})
			Expect(exp.Transfer.CanSubmit()).To(BeTrue())

			Expect(exp.Transfer.Submit(ctx)).To(Succeed())

			state := exp.Transfer.State()
			Expect(state.Open).To(BeFalse())
			Expect(state.Input).To(Equal(explorer.TransferInput{}))
			Expect(fakeNotifier.SuccessCallCount()).To(Equal(1))
			Expect(fakeNotifier.ErrorCallCount()).To(BeZero())

			txs := exp.Transactions.Items()
			Expect(txs).NotTo(BeEmpty())
			Expect(txs[0].Type).To(Equal(chainapi.TxTransfer))
			Expect(txs[0].Amount).To(Equal(5.0))
		})

		It("sends nothing while the input is invalid", func() {
			server.ResetRequests()
			exp.Transfer.Set(explorer.TransferInput{From: alice, To: bob, Amount: "-1"})

			Expect(exp.Transfer.CanSubmit()).To(BeFalse())
			Expect(exp.Transfer.Submit(ctx)).To(MatchError(explorer.ErrInvalidInput))
			Expect(server.Requests()).To(BeEmpty())
			Expect(exp.Transfer.Input().Amount).To(Equal("-1"))
		})

		It("refuses a transfer to the sender", func() {
			exp.Transfer.Set(explorer.TransferInput{From: alice, To: alice, Amount: "1"})
			Expect(exp.Transfer.Submit(ctx)).To(MatchError(explorer.ErrInvalidInput))
		})

		It("keeps the input and reports the server message on rejection", func() {
			input := explorer.TransferInput{From: bob, To: alice, Amount: "5"}
			exp.Transfer.Set(input)

			Expect(exp.Transfer.Submit(ctx)).To(MatchError(chainapi.ErrRejected))

			state := exp.Transfer.State()
			Expect(state.Open).To(BeTrue())
			Expect(state.Input).To(Equal(input))
			Expect(fakeNotifier.ErrorCallCount()).To(Equal(1))
			Expect(fakeNotifier.ErrorArgsForCall(0)).To(Equal("insufficient balance"))
		})

		It("falls back to a generic message without a server explanation", func() {
			server.Fail("POST /transfers", http.StatusInternalServerError, "")
			exp.Transfer.Set(explorer.TransferInput{From: alice, To: bob, Amount: "5"})

			Expect(exp.Transfer.Submit(ctx)).NotTo(Succeed())
			Expect(fakeNotifier.ErrorArgsForCall(0)).To(Equal("transfer failed: internal server error"))
		})

		It("estimates the fee without touching the form", func() {
			estimate, err := exp.EstimateFee(ctx, explorer.TransferInput{From: alice, To: bob, Amount: "1000"})
			Expect(err).NotTo(HaveOccurred())
			Expect(estimate.Fee).To(BeNumerically("~", 1.0, 1e-9))
			Expect(exp.Transfer.State().Open).To(BeFalse())
		})
	})

	Describe("token form", func() {
		var wallet string

		BeforeEach(func() {
			wallet = server.AddWallet(10)
		})

		It("keeps the mint form open when the server rejects it", func() {
			server.Fail("POST /tokens/mint", http.StatusBadRequest, `{"success":false,"message":"insufficient supply"}`)
			input := explorer.TokenOperationInput{Operation: explorer.OperationMint, Wallet: wallet, Amount: "100"}
			exp.TokenOperation.Set(input)

			Expect(exp.TokenOperation.Submit(ctx)).NotTo(Succeed())

			state := exp.TokenOperation.State()
			Expect(state.Open).To(BeTrue())
			Expect(state.Input).To(Equal(input))
			Expect(fakeNotifier.ErrorCallCount()).To(Equal(1))
			Expect(fakeNotifier.ErrorArgsForCall(0)).To(Equal("insufficient supply"))
			Expect(fakeNotifier.SuccessCallCount()).To(BeZero())
		})

		It("mints and burns", func() {
			exp.TokenOperation.Set(explorer.TokenOperationInput{Operation: explorer.OperationMint, Wallet: wallet, Amount: "5"})
			Expect(exp.TokenOperation.Submit(ctx)).To(Succeed())
			Expect(server.Balance(wallet)).To(Equal(15.0))

			exp.TokenOperation.Set(explorer.TokenOperationInput{Operation: explorer.OperationBurn, Wallet: wallet, Amount: "2.5"})
			Expect(exp.TokenOperation.Submit(ctx)).To(Succeed())
			Expect(server.Balance(wallet)).To(Equal(12.5))

			Expect(fakeNotifier.SuccessArgsForCall(0)).To(Equal("tokens minted"))
			Expect(fakeNotifier.SuccessArgsForCall(1)).To(Equal("tokens burned"))
		})

		It("rejects an unknown operation before sending", func() {
			exp.TokenOperation.Set(explorer.TokenOperationInput{Operation: "stake", Wallet: wallet, Amount: "1"})
			Expect(exp.TokenOperation.Submit(ctx)).To(MatchError(explorer.ErrInvalidInput))
		})
	})

	Describe("Tokens", func() {
		It("lists the top holders and their share", func() {
			balances := []float64{5, 70, 1, 30, 10, 2, 40}
			for _, b := range balances {
				server.AddWallet(b)
			}

			Expect(exp.Tokens.Refresh(ctx)).To(Succeed())

			top := exp.Tokens.TopHolders(explorer.TopHolderCount)
			Expect(top).To(HaveLen(5))
			Expect(top[0].Balance).To(Equal(70.0))
			Expect(top[4].Balance).To(Equal(5.0))
			Expect(exp.Tokens.CirculatingSupply()).To(Equal(158.0))
			Expect(exp.Tokens.Summary().Value.Info.Symbol).To(Equal("COSMO"))
			Expect(exp.Tokens.Holders(listview.Query{}).Items).To(HaveLen(7))
		})
	})

	Describe("Mining", func() {
		var alice, bob string

		BeforeEach(func() {
			alice = server.AddWallet(1)
			bob = server.AddWallet(2)
			Expect(exp.Mining.Refresh(ctx)).To(Succeed())
		})

		It("shrinks the unregistered wallets after a registration", func() {
			data, _ := exp.Mining.Value()
			Expect(data.UnregisteredWallets()).To(HaveLen(2))

			exp.RegisterMiner.Set(explorer.RegisterMinerInput{Address: alice, Name: "rig"})
			Expect(exp.RegisterMiner.Submit(ctx)).To(Succeed())

			data, _ = exp.Mining.Value()
			unregistered := data.UnregisteredWallets()
			Expect(unregistered).To(HaveLen(1))
			Expect(unregistered[0].Address).To(Equal(bob))
			Expect(data.RegisteredMiners()).To(HaveLen(1))
			Expect(exp.Mining.Miners(listview.Query{Search: "RIG"})).To(HaveLen(1))
		})

		It("refuses to register a miner twice before sending", func() {
			exp.RegisterMiner.Set(explorer.RegisterMinerInput{Address: alice})
			Expect(exp.RegisterMiner.Submit(ctx)).To(Succeed())
			server.ResetRequests()

			exp.RegisterMiner.Set(explorer.RegisterMinerInput{Address: alice})
			Expect(exp.RegisterMiner.Submit(ctx)).To(MatchError(explorer.ErrAlreadyMiner))
			Expect(server.Requests()).To(BeEmpty())
		})

		It("only starts registered miners", func() {
			exp.StartMining.Set(explorer.MinerInput{Address: bob})
			Expect(exp.StartMining.Submit(ctx)).To(MatchError(explorer.ErrNotRegistered))
		})

		It("starts and stops the current miner", func() {
			exp.RegisterMiner.Set(explorer.RegisterMinerInput{Address: alice})
			Expect(exp.RegisterMiner.Submit(ctx)).To(Succeed())

			exp.StartMining.Set(explorer.MinerInput{Address: alice})
			Expect(exp.StartMining.Submit(ctx)).To(Succeed())

			data, _ := exp.Mining.Value()
			current, mining := data.CurrentMiner()
			Expect(mining).To(BeTrue())
			Expect(current).To(Equal(alice))

			Expect(exp.StopMining.Submit(ctx)).To(Succeed())
			data, _ = exp.Mining.Value()
			_, mining = data.CurrentMiner()
			Expect(mining).To(BeFalse())

			Expect(exp.StopMining.Submit(ctx)).To(MatchError(explorer.ErrNotMining))
		})

		It("unregisters a miner", func() {
			exp.RegisterMiner.Set(explorer.RegisterMinerInput{Address: alice})
			Expect(exp.RegisterMiner.Submit(ctx)).To(Succeed())

			exp.UnregisterMiner.Set(explorer.MinerInput{Address: alice})
			Expect(exp.UnregisterMiner.Submit(ctx)).To(Succeed())

			data, _ := exp.Mining.Value()
			Expect(data.Miners).To(BeEmpty())
			Expect(data.UnregisteredWallets()).To(HaveLen(2))
		})
	})
})
