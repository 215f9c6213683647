package explorer_test

import (
	"context"
	"errors"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/explorer/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Form", func() {
	var (
		fakeNotifier *fake.Notifier
		release      chan error
		entered      chan struct{}
		refreshed    int
		sent         []string
		form         *explorer.Form[explorer.WalletInput]
	)

	BeforeEach(func() {
		fakeNotifier = new(fake.Notifier)
		release = make(chan error)
		entered = make(chan struct{}, 1)
		refreshed = 0
		sent = nil
		form = explorer.NewForm(zap.NewNop().Sugar(), fakeNotifier, explorer.FormConfig[explorer.WalletInput]{
			Name: "wallet deletion",
			Submit: func(ctx context.Context, in explorer.WalletInput) (string, error) {
				sent = append(sent, in.Address)
				entered <- struct{}{}
				if err := <-release; err != nil {
					return "", err
				}
				return "wallet deleted", nil
			},
			Refresh: []func(context.Context) error{
				func(context.Context) error {
					refreshed++
					return nil
				},
			},
		})
		form.Set(explorer.WalletInput{Address: "addrA"})
	})

	It("guards against a second submit while one is pending", func() {
		done := make(chan error)
		go func() {
			done <- form.Submit(context.Background())
		}()
		Eventually(entered).Should(Receive())

		Expect(form.State().Submitting).To(BeTrue())
		Expect(form.CanSubmit()).To(BeFalse())
		Expect(form.Submit(context.Background())).To(MatchError(explorer.ErrSubmitting))

		release <- nil
		Eventually(done).Should(Receive(BeNil()))
		Expect(form.State().Submitting).To(BeFalse())
		Expect(refreshed).To(Equal(1))
	})

	It("does not refresh after a failure", func() {
		done := make(chan error)
		go func() {
			done <- form.Submit(context.Background())
		}()
		Eventually(entered).Should(Receive())

		release <- errors.New("boom")
		Eventually(done).Should(Receive(MatchError("boom")))

		Expect(refreshed).To(BeZero())
		Expect(form.Input().Address).To(Equal("addrA"))
		Expect(fakeNotifier.ErrorArgsForCall(0)).To(Equal("wallet deletion failed: boom"))
	})

	It("keeps the input of a pending submit", func() {
		done := make(chan error)
		go func() {
			done <- form.SubmitInput(context.Background(), explorer.WalletInput{Address: "addrB"})
		}()
		Eventually(entered).Should(Receive())

		Expect(form.SubmitInput(context.Background(), explorer.WalletInput{Address: "addrC"})).To(MatchError(explorer.ErrSubmitting))
		Expect(form.Set(explorer.WalletInput{Address: "addrC"})).To(MatchError(explorer.ErrSubmitting))
		Expect(form.Input().Address).To(Equal("addrB"))

		release <- errors.New("boom")
		Eventually(done).Should(Receive(MatchError("boom")))

		Expect(sent).To(Equal([]string{"addrB"}))
		Expect(form.Input().Address).To(Equal("addrB"))
		Expect(form.Set(explorer.WalletInput{Address: "addrC"})).To(Succeed())
	})

	It("keeps invalid input passed to SubmitInput", func() {
		err := form.SubmitInput(context.Background(), explorer.WalletInput{})
		Expect(err).To(MatchError(explorer.ErrInvalidInput))
		Expect(sent).To(BeEmpty())
		Expect(form.State().Open).To(BeTrue())
		Expect(form.Input().Address).To(BeEmpty())
	})

	It("closes without losing the input", func() {
		form.Close()
		state := form.State()
		Expect(state.Open).To(BeFalse())
		Expect(state.Input.Address).To(Equal("addrA"))
	})

	It("explains why it cannot submit", func() {
		form.Set(explorer.WalletInput{})
		state := form.State()
		Expect(state.CanSubmit).To(BeFalse())
		Expect(state.Problem).To(ContainSubstring("address"))
	})
})

var _ = Describe("ParseAmount", func() {
	DescribeTable("amounts",
		func(in string, expected float64, expectedErr error) {
			got, err := explorer.ParseAmount(in)
			if expectedErr != nil {
				Expect(err).To(MatchError(expectedErr))
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(expected))
		},
		Entry("integer", "5", 5.0, nil),
		Entry("decimal", " 0.25 ", 0.25, nil),
		Entry("zero", "0", 0.0, nil),
		Entry("negative", "-1", 0.0, explorer.ErrNegativeAmount),
		Entry("garbage", "five", 0.0, explorer.ErrNotAnAmount),
	)
})

var _ = Describe("derived sets", func() {
	It("subtracts the miners from the wallets", func() {
		wallets := []chainapi.Wallet{{Address: "a"}, {Address: "b"}, {Address: "c"}}
		miners := []chainapi.Miner{{Address: "b"}, {Address: "z"}}

		Expect(explorer.UnregisteredWallets(wallets, miners)).To(Equal([]chainapi.Wallet{{Address: "a"}, {Address: "c"}}))
		Expect(explorer.UnregisteredWallets(wallets, nil)).To(Equal(wallets))
		Expect(explorer.RegisteredMiners(miners)).To(Equal(miners))
	})
})
