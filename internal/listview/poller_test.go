package listview_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"cosmosexplorer/internal/listview"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Poller", func() {
	It("runs immediately and then on every tick", func() {
		var runs atomic.Int32
		poller := listview.NewPoller(zap.NewNop().Sugar(), "test", 10*time.Millisecond, func(context.Context) {
			runs.Add(1)
		})
		poller.Start(context.Background())
		DeferCleanup(poller.Stop)

		Eventually(runs.Load).Should(BeNumerically(">=", 3))
	})

	It("never overlaps runs", func() {
		var running, overlaps, runs atomic.Int32
		poller := listview.NewPoller(zap.NewNop().Sugar(), "slow", time.Millisecond, func(context.Context) {
			if running.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			runs.Add(1)
		})
		poller.Start(context.Background())

		Eventually(runs.Load).Should(BeNumerically(">=", 4))
		poller.Stop()
		Expect(overlaps.Load()).To(BeZero())
	})

	It("stops ticking and cancels the run in flight", func() {
		var runs atomic.Int32
		cancelled := make(chan error, 1)
		poller := listview.NewPoller(zap.NewNop().Sugar(), "stop", 5*time.Millisecond, func(ctx context.Context) {
			if runs.Add(1) == 2 {
				<-ctx.Done()
				cancelled <- ctx.Err()
			}
		})
		poller.Start(context.Background())
		Eventually(runs.Load).Should(BeNumerically(">=", 2))

		poller.Stop()
		Expect(cancelled).To(Receive(MatchError(context.Canceled)))

		after := runs.Load()
		Consistently(runs.Load, 30*time.Millisecond).Should(Equal(after))
		poller.Stop()
	})
})

var _ = Describe("Batch", func() {
	It("succeeds when every fetch succeeds", func() {
		var a, b int
		err := listview.Batch(context.Background(),
			func(context.Context) error { a = 1; return nil },
			func(context.Context) error { b = 2; return nil },
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(a + b).To(Equal(3))
	})

	It("fails as a whole and cancels the others", func() {
		boom := errors.New("boom")
		cancelled := make(chan struct{})
		err := listview.Batch(context.Background(),
			func(context.Context) error { return boom },
			func(ctx context.Context) error {
				<-ctx.Done()
				close(cancelled)
				return ctx.Err()
			},
		)
		Expect(err).To(MatchError(boom))
		Expect(cancelled).To(BeClosed())
	})
})
