package listview_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/chainapi/chaintest"
	"cosmosexplorer/internal/listview"
	"cosmosexplorer/internal/notify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type row struct {
	ID   string
	Kind string
}

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		kind := "even"
		if i%2 == 1 {
			kind = "odd"
		}
		out[i] = row{ID: fmt.Sprintf("Row-%03d", i), Kind: kind}
	}
	return out
}

func sliceFetcher(items *[]row) listview.Fetcher[row] {
	return func(_ context.Context, page listview.Page) (listview.Result[row], error) {
		all := *items
		start := min(page.Offset, len(all))
		end := min(page.Offset+page.Limit, len(all))
		return listview.Result[row]{
			Items:   append([]row(nil), all[start:end]...),
			HasMore: end < len(all),
			Total:   int64(len(all)),
		}, nil
	}
}

func rowConfig(pageSize int, fetch listview.Fetcher[row]) listview.Config[row] {
	return listview.Config[row]{
		Name:     "rows",
		PageSize: pageSize,
		Fetch:    fetch,
		Key:      func(r row) string { return r.ID },
		Fields:   func(r row) []string { return []string{r.ID} },
		Type:     func(r row) string { return r.Kind },
	}
}

func neverExpire(time.Duration, func()) notify.Timer {
	return time.NewTimer(time.Hour)
}

var _ = Describe("Pager", func() {
	var (
		ctx context.Context
		bus *notify.Bus
	)

	BeforeEach(func() {
		ctx = context.Background()
		bus = notify.NewBus(zap.NewNop().Sugar(), time.Second, notify.WithScheduler(neverExpire))
		DeferCleanup(bus.Close)
	})

	DescribeTable("loading every page",
		func(n, pageSize, expectedFetches int) {
			items := rows(n)
			pager := listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(pageSize, sliceFetcher(&items)))

			Expect(pager.Load(ctx)).To(Succeed())
			for pager.Snapshot(listview.Query{}).HasMore {
				Expect(pager.LoadMore(ctx)).To(Succeed())
			}

			Expect(pager.Fetches()).To(Equal(expectedFetches))
			Expect(pager.Items()).To(Equal(items))

			Expect(pager.LoadMore(ctx)).To(Succeed())
			Expect(pager.Fetches()).To(Equal(expectedFetches))
		},
		Entry("partial last page", 45, 20, 3),
		Entry("exact pages", 40, 20, 2),
		Entry("single short page", 7, 10, 1),
		Entry("page of one", 3, 1, 3),
	)

	It("hides rows until the first load succeeds", func() {
		items := rows(3)
		pager := listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(5, sliceFetcher(&items)))

		snapshot := pager.Snapshot(listview.Query{})
		Expect(snapshot.Loaded).To(BeFalse())
		Expect(snapshot.Items).To(BeEmpty())
		Expect(snapshot.State).To(Equal(listview.StateIdle))

		Expect(pager.LoadMore(ctx)).To(Succeed())
		Expect(pager.Fetches()).To(BeZero())
	})

	It("drops items already loaded when pages shift", func() {
		items := rows(30)
		pager := listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(10, sliceFetcher(&items)))
		Expect(pager.Load(ctx)).To(Succeed())

		items = append([]row{{ID: "Row-new", Kind: "even"}}, items...)
		Expect(pager.LoadMore(ctx)).To(Succeed())

		loaded := pager.Items()
		Expect(loaded).To(HaveLen(19))
		Expect(loaded[9].ID).To(Equal("Row-009"))
		Expect(loaded[10].ID).To(Equal("Row-010"))
	})

	When("a fetch is in flight", func() {
		var (
			gate    chan struct{}
			entered chan struct{}
			pager   *listview.Pager[row]
		)

		BeforeEach(func() {
			items := rows(50)
			gate = make(chan struct{})
			entered = make(chan struct{}, 1)
			inner := sliceFetcher(&items)
			calls := 0
			fetch := func(ctx context.Context, page listview.Page) (listview.Result[row], error) {
				calls++
				if calls == 2 {
					entered <- struct{}{}
					<-gate
				}
				return inner(ctx, page)
			}
			pager = listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(10, fetch))
			Expect(pager.Load(ctx)).To(Succeed())
		})

		It("ignores load more until it finishes", func() {
			done := make(chan error)
			go func() {
				done <- pager.LoadMore(ctx)
			}()
			Eventually(entered).Should(Receive())

			Expect(pager.State()).To(Equal(listview.StateLoadingMore))
			Expect(pager.LoadMore(ctx)).To(Succeed())
			Expect(pager.Fetches()).To(Equal(2))
			Expect(pager.Items()).To(HaveLen(10))

			close(gate)
			Eventually(done).Should(Receive(BeNil()))
			Expect(pager.State()).To(Equal(listview.StateIdle))
			Expect(pager.Items()).To(HaveLen(20))
		})
	})

	Describe("refresh", func() {
		It("replaces everything loaded so far with one snapshot", func() {
			items := rows(50)
			var pages []listview.Page
			inner := sliceFetcher(&items)
			fetch := func(ctx context.Context, page listview.Page) (listview.Result[row], error) {
				pages = append(pages, page)
				return inner(ctx, page)
			}
			pager := listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(10, fetch))
			Expect(pager.Load(ctx)).To(Succeed())
			Expect(pager.LoadMore(ctx)).To(Succeed())

			items = append([]row{{ID: "Row-new"}}, items...)
			Expect(pager.Refresh(ctx)).To(Succeed())

			Expect(pages[2]).To(Equal(listview.Page{Limit: 20, Offset: 0}))
			Expect(pager.Items()).To(HaveLen(20))
			Expect(pager.Items()[0].ID).To(Equal("Row-new"))
			Expect(pager.Snapshot(listview.Query{}).Offset).To(Equal(20))
		})

		It("keeps the previous list when it fails", func() {
			items := rows(5)
			fail := false
			inner := sliceFetcher(&items)
			fetch := func(ctx context.Context, page listview.Page) (listview.Result[row], error) {
				if fail {
					return listview.Result[row]{}, errors.New("chain api down")
				}
				return inner(ctx, page)
			}
			pager := listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(10, fetch))
			Expect(pager.Load(ctx)).To(Succeed())

			fail = true
			Expect(pager.Refresh(ctx)).To(MatchError("chain api down"))

			snapshot := pager.Snapshot(listview.Query{})
			Expect(snapshot.Items).To(Equal(items))
			Expect(snapshot.State).To(Equal(listview.StateIdle))
			Expect(snapshot.Error).To(Equal("chain api down"))

			active := bus.Active()
			Expect(active).To(HaveLen(1))
			Expect(active[0].Severity).To(Equal(notify.SeverityError))
			Expect(active[0].Message).To(Equal("chain api down"))

			fail = false
			Expect(pager.Refresh(ctx)).To(Succeed())
			Expect(pager.Snapshot(listview.Query{}).Error).To(BeEmpty())
		})

		It("discards a response older than the applied one", func() {
			old := rows(3)
			current := rows(5)
			release := make(chan struct{})
			started := make(chan struct{}, 1)
			calls := 0
			fetch := func(ctx context.Context, page listview.Page) (listview.Result[row], error) {
				calls++
				if calls == 1 {
					started <- struct{}{}
					<-release
					return listview.Result[row]{Items: old}, nil
				}
				return listview.Result[row]{Items: current}, nil
			}
			pager := listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(10, fetch))

			slow := make(chan error)
			go func() {
				slow <- pager.Refresh(ctx)
			}()
			Eventually(started).Should(Receive())

			Expect(pager.Refresh(ctx)).To(Succeed())
			close(release)
			Eventually(slow).Should(Receive(MatchError(listview.ErrStale)))

			Expect(pager.Items()).To(Equal(current))
		})
	})

	It("filters on the client without fetching", func() {
		items := rows(12)
		pager := listview.NewPager(zap.NewNop().Sugar(), bus, rowConfig(20, sliceFetcher(&items)))
		Expect(pager.Load(ctx)).To(Succeed())

		Expect(pager.View(listview.Query{Search: "row-01"})).To(Equal(items[10:12]))
		Expect(pager.View(listview.Query{Search: "row-01", Type: "odd"})).To(Equal(items[11:12]))
		Expect(pager.View(listview.Query{Type: listview.AllTypes})).To(Equal(items))
		Expect(pager.Fetches()).To(Equal(1))
	})

	Describe("against the chain api", func() {
		var (
			server *chaintest.Server
			client *chainapi.Client
			pager  *listview.Pager[chainapi.Block]
		)

		BeforeEach(func() {
			server = chaintest.NewServer()
			DeferCleanup(server.Close)
			server.AddBlocks(45)
			client = chainapi.NewClient(zap.NewNop().Sugar(), server.URL, http.DefaultClient)
			pager = listview.NewPager(zap.NewNop().Sugar(), bus, listview.Config[chainapi.Block]{
				Name:     "blocks",
				PageSize: 20,
				Fetch: func(ctx context.Context, page listview.Page) (listview.Result[chainapi.Block], error) {
					res, err := client.Blocks(ctx, page.Limit, page.Offset)
					if err != nil {
						return listview.Result[chainapi.Block]{}, err
					}
					return listview.Result[chainapi.Block]{Items: res.Blocks, HasMore: res.HasMore, Total: res.Total}, nil
				},
				Key:      func(b chainapi.Block) string { return b.Hash },
				Describe: chainapi.Message,
			})
		})

		It("loads twenty blocks and appends the next twenty", func() {
			Expect(pager.Load(ctx)).To(Succeed())
			snapshot := pager.Snapshot(listview.Query{})
			Expect(snapshot.Items).To(HaveLen(20))
			Expect(snapshot.HasMore).To(BeTrue())

			Expect(pager.LoadMore(ctx)).To(Succeed())
			Expect(pager.Items()).To(HaveLen(40))
			Expect(server.Requests()).To(Equal([]string{
				"GET /blockchain/blocks?limit=20&offset=0",
				"GET /blockchain/blocks?limit=20&offset=20",
			}))
		})

		It("notifies with the normalized message", func() {
			server.Fail("GET /blockchain/blocks", http.StatusInternalServerError, "")
			Expect(pager.Load(ctx)).NotTo(Succeed())
			Expect(bus.Active()[0].Message).To(Equal("internal server error"))
		})
	})
})

var _ = Describe("Window", func() {
	It("grows the limit and keeps the tail past the offset", func() {
		var limits []int
		fetch := listview.Window(func(_ context.Context, limit int) ([]int, int64, error) {
			limits = append(limits, limit)
			all := make([]int, 0, limit)
			for i := 0; i < limit && i < 120; i++ {
				all = append(all, i)
			}
			return all, 120, nil
		})

		res, err := fetch(context.Background(), listview.Page{Limit: 50, Offset: 50})
		Expect(err).NotTo(HaveOccurred())
		Expect(limits).To(Equal([]int{100}))
		Expect(res.Items).To(HaveLen(50))
		Expect(res.Items[0]).To(Equal(50))
		Expect(res.HasMore).To(BeTrue())

		res, err = fetch(context.Background(), listview.Page{Limit: 50, Offset: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Items).To(HaveLen(20))
		Expect(res.HasMore).To(BeFalse())
	})
})
