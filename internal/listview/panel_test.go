package listview_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cosmosexplorer/internal/listview"
	"cosmosexplorer/internal/notify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Panel", func() {
	var (
		bus   *notify.Bus
		value int
		err   error
		panel *listview.Panel[int]
	)

	BeforeEach(func() {
		bus = notify.NewBus(zap.NewNop().Sugar(), time.Second, notify.WithScheduler(neverExpire))
		DeferCleanup(bus.Close)
		value, err = 0, nil
		panel = listview.NewPanel(zap.NewNop().Sugar(), bus, "counter", func(context.Context) (int, error) {
			return value, err
		}, func(err error) string { return "failed to fetch counter: " + err.Error() })
	})

	It("applies each successful refresh", func() {
		_, loaded := panel.Value()
		Expect(loaded).To(BeFalse())

		value = 7
		Expect(panel.Refresh(context.Background())).To(Succeed())

		got, loaded := panel.Value()
		Expect(loaded).To(BeTrue())
		Expect(got).To(Equal(7))
	})

	It("keeps the last value when a refresh fails", func() {
		value = 3
		Expect(panel.Refresh(context.Background())).To(Succeed())

		value, err = 99, errors.New("timeout")
		Expect(panel.Refresh(context.Background())).To(MatchError("timeout"))

		snapshot := panel.Snapshot()
		Expect(snapshot.Value).To(Equal(3))
		Expect(snapshot.Error).To(Equal("failed to fetch counter: timeout"))
		Expect(bus.Active()).To(HaveLen(1))
		Expect(bus.Active()[0].Message).To(Equal("failed to fetch counter: timeout"))
	})

	It("stays quiet when the refresh is cancelled", func() {
		started := make(chan struct{})
		panel = listview.NewPanel(zap.NewNop().Sugar(), bus, "counter", func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, fmt.Errorf("get counter: %w", ctx.Err())
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- panel.Refresh(ctx) }()

		Eventually(started).Should(BeClosed())
		cancel()

		var refreshErr error
		Eventually(done).Should(Receive(&refreshErr))
		Expect(refreshErr).To(MatchError(context.Canceled))
		Expect(bus.Active()).To(BeEmpty())

		_, loaded := panel.Value()
		Expect(loaded).To(BeFalse())
	})
})
