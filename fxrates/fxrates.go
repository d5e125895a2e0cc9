// Package fxrates fetches the HKD and USD exchange rates against RMB from a
// public quote API, so a scenario can be refreshed to market levels with one
// command. Responses are cached on disk for a day: planning does not need
// intraday precision.
package fxrates

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/lionrock/treasury"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the open access endpoint of the ER-API quote service.
// https://open.er-api.com/v6/latest/USD returns {"rates":{"CNY":7.2,...}}.
const DefaultBaseURL = "https://open.er-api.com/v6"

// Client queries the quote API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client with the default endpoint and a day-long disk cache.
func New() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: newDailyCachingClient()}
}

// Latest returns the current HKD→RMB and USD→RMB rates.
func (c *Client) Latest() (treasury.Rates, error) {
	hkd, err := c.rmbPer("HKD")
	if err != nil {
		return treasury.Rates{}, err
	}
	usd, err := c.rmbPer("USD")
	if err != nil {
		return treasury.Rates{}, err
	}
	return treasury.Rates{HKDToRMB: hkd, USDToRMB: usd}, nil
}

// rmbPer returns how many RMB one unit of cur buys.
func (c *Client) rmbPer(cur string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/latest/%s", c.BaseURL, cur)
	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("error fetching %s rate: %w", cur, err)
	}

	path := "$.rates.CNY"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error parsing %s rate: %q %w", cur, path, err)
	}
	// jsonpath sometimes wraps a single answer in a list; unwrap it.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("error parsing %s rate: %q not a number: %v", cur, path, jval)
	}
	if val <= 0 {
		return decimal.Decimal{}, fmt.Errorf("quote service returned a non-positive %s rate: %v", cur, val)
	}
	return decimal.NewFromFloat(val), nil
}
