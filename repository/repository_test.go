package repository

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// downDoer simulates a dead network: every call fails at transport level.
type downDoer struct{}

func (downDoer) Do(_ context.Context, _, _ string, _ url.Values, _ io.Reader) (*http.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

// newTestClient points a real BackendClient at a httptest server.
func newTestClient(srv *httptest.Server) client.Doer {
	return client.NewBackendClient(srv.URL, 2*time.Second)
}

func userFixture(name, email string) models.User {
	return models.User{Name: name, Email: email, Password: "pikapika", Active: true}
}
