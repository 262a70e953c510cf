package out

import "net/http"

// TokenSource yields the current bearer credential, if there is one.
type TokenSource interface {
	AccessToken() (string, bool)
}

type TokenSourceFunc func() (string, bool)

func (f TokenSourceFunc) AccessToken() (string, bool) { return f() }

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
