package format_test

import (
	"time"

	"cosmosexplorer/internal/format"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Format", func() {
	DescribeTable("Address",
		func(in string, n int, expected string) {
			Expect(format.Address(in, n)).To(Equal(expected))
		},
		Entry("empty", "", 8, ""),
		Entry("short enough", "abcdef", 3, "abcdef"),
		Entry("exactly twice n", "abcdefghijklmnop", 8, "abcdefghijklmnop"),
		Entry("truncated", "0123456789abcdefXYZ", 4, "0123...fXYZ"),
	)

	It("shortens hashes to twelve characters per side", func() {
		hash := "000000aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaabbbbbb"
		Expect(format.Hash(hash)).To(Equal("000000aaaaaa...aaaaaabbbbbb"))
	})

	DescribeTable("Number",
		func(x float64, decimals int, expected string) {
			Expect(format.Number(x, decimals)).To(Equal(expected))
		},
		Entry("zero", 0.0, 6, "0"),
		Entry("dust", 0.0004, 6, "< 0.001"),
		Entry("threshold", 0.001, 6, "0.001"),
		Entry("grouping", 1234567.0, 2, "1,234,567"),
		Entry("fraction", 1234.5, 6, "1,234.5"),
		Entry("rounded", 2.345678, 2, "2.35"),
		Entry("negative", -1500.25, 2, "-1,500.25"),
		Entry("small negative", -0.0004, 6, "-0.0004"),
	)

	It("formats balances with six decimals", func() {
		Expect(format.Balance(10.1234567)).To(Equal("10.123457"))
	})

	It("renders timestamps in local time", func() {
		at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
		Expect(format.Timestamp(at.UnixMilli())).To(Equal("2024-03-05 14:07:09"))
	})

	DescribeTable("TimeAgo",
		func(ago time.Duration, expected string) {
			now := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
			Expect(format.TimeAgo(now.Add(-ago).UnixMilli(), now)).To(Equal(expected))
		},
		Entry("now", time.Duration(0), "now"),
		Entry("seconds", 30*time.Second, "30 seconds ago"),
		Entry("minutes", 5*time.Minute, "5 minutes ago"),
		Entry("hours", 3*time.Hour, "3 hours ago"),
	)

	DescribeTable("TransactionType",
		func(in, expected string) {
			Expect(format.TransactionType(in)).To(Equal(expected))
		},
		Entry("transfer", "transfer", "Transfer"),
		Entry("mint", "mint", "Mint"),
		Entry("burn", "burn", "Burn"),
		Entry("mine", "mine", "Mining reward"),
		Entry("unknown", "stake", "stake"),
	)

	It("falls back to a label for missing parties", func() {
		addr := "0123456789abcdef0123456789"
		Expect(format.Party(nil, "System")).To(Equal("System"))
		Expect(format.Party(&addr, "System")).To(Equal("01234567...23456789"))
	})

	It("computes shares", func() {
		Expect(format.Share(25, 200)).To(Equal("12.50%"))
		Expect(format.Share(1, 3)).To(Equal("33.33%"))
		Expect(format.Share(5, 0)).To(Equal("0%"))
	})
})
