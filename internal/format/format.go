// Package format turns raw chain values into display strings.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	ShortAddress = 8
	shortHash    = 12

	TimestampLayout = "2006-01-02 15:04:05"

	balanceDecimals = 6
	dust            = 0.001
)

// Address shortens s to its first and last n characters.
func Address(s string, n int) string {
	if s == "" {
		return ""
	}
	if len(s) <= 2*n {
		return s
	}
	return s[:n] + "..." + s[len(s)-n:]
}

func Hash(s string) string {
	return Address(s, shortHash)
}

// Number groups thousands and keeps at most decimals fraction digits.
// Positive values below 0.001 render as "< 0.001"; negative values keep
// their digits.
func Number(x float64, decimals int) string {
	if x == 0 {
		return "0"
	}
	if x > 0 && x < dust {
		return "< " + strconv.FormatFloat(dust, 'f', -1, 64)
	}

	d := decimal.NewFromFloat(x).Round(int32(decimals))
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole, frac, _ := strings.Cut(d.String(), ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + d.String()
	}

	out := sign + humanize.Comma(n)
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "." + frac
	}
	return out
}

func Balance(x float64) string {
	return Number(x, balanceDecimals)
}

// Timestamp renders epoch milliseconds in local time.
func Timestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format(TimestampLayout)
}

// TimeAgo renders epoch milliseconds relative to now, e.g. "5 minutes ago".
func TimeAgo(ms int64, now time.Time) string {
	return humanize.RelTime(time.UnixMilli(ms), now, "ago", "from now")
}

var transactionTypes = map[string]string{
	"transfer": "Transfer",
	"mint":     "Mint",
	"burn":     "Burn",
	"mine":     "Mining reward",
}

func TransactionType(t string) string {
	if label, ok := transactionTypes[t]; ok {
		return label
	}
	return t
}

// Party renders a nullable transaction endpoint, falling back to a label such as "System" or "Burned".
func Party(addr *string, fallback string) string {
	if addr == nil || *addr == "" {
		return fallback
	}
	return Address(*addr, ShortAddress)
}

// Share renders part as a percentage of whole with two decimals.
func Share(part, whole float64) string {
	if whole <= 0 {
		return "0%"
	}
	pct := decimal.NewFromFloat(part).Div(decimal.NewFromFloat(whole)).Mul(decimal.NewFromInt(100))
	return pct.StringFixed(2) + "%"
}
