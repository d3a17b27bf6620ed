package client

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// httpClient wraps resty with the relay's conventions: JSON bodies, strict
// response decoding, typed errors for non-2xx statuses. Retries stay off;
// the only implicit retry this client performs is the session refresh in
// the read paths.
type httpClient struct {
	rc *resty.Client
}

func newHTTPClient(baseURL string, timeout time.Duration) *httpClient {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "relaykit")

	return &httpClient{rc: rc}
}

type requestOptions struct {
	headers map[string]string
	params  map[string]string
	body    any
}

// do executes one request and decodes a 2xx JSON body into out (skipped when
// out is nil). Non-2xx replies come back as *StatusError; bodies that fail
// to decode are reported as plain errors, same as transport failures.
func (h *httpClient) do(ctx context.Context, method, endpoint string, opt *requestOptions, out any) error {
	r := h.rc.R().SetContext(ctx)

	if opt != nil {
		if len(opt.headers) > 0 {
			r.SetHeaders(opt.headers)
		}
		if len(opt.params) > 0 {
			r.SetQueryParams(opt.params)
		}
		if opt.body != nil {
			r.SetHeader("Content-Type", "application/json")
			r.SetBody(opt.body)
		}
	}

	resp, err := r.Execute(method, endpoint)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, endpoint)
	}
	if resp.IsError() {
		return &StatusError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return errors.Wrapf(err, "decode %s %s response", method, endpoint)
		}
	}
	return nil
}
