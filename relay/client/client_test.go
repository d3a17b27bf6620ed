package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/veridex/relaykit/relay/types"
)

// newTestClient spins up a mock relay and a client pointed at it with the
// rate limit disabled. The server is torn down with the test.
func newTestClient(t *testing.T, handler http.Handler, creds *Credentials) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Options{
		BaseURL:     srv.URL,
		RPS:         -1,
		Credentials: creds,
	})
}

func decodeBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Errorf("decode request body: %v", err)
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// makeOrders builds n distinguishable signed orders. The salt carries the
// sequence number so tests can assert ordering across pages.
func makeOrders(prefix string, start, n int) []types.APIOrder {
	records := make([]types.APIOrder, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, types.APIOrder{
			Order: types.SignedOrder{
				MakerAddress:     "0xmaker",
				MakerAssetAmount: "100",
				TakerAssetAmount: "200",
				Salt:             fmt.Sprintf("%s-%d", prefix, start+i),
			},
		})
	}
	return records
}

func loginOK(t *testing.T, userID int64, token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, types.UserToken{UserID: userID, Token: token})
	}
}
