package chainapi

import "net/http"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name HTTPDoer . HTTPDoer
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
