package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"vendora/internal/domain/model"
	"vendora/internal/quote"
)

// 距離/ETAサービスのHTTPクライアント。
// GET {base}/v1/route?address=..&vendor_lat=..&vendor_lng=..&mode=driving
// 応答: {"distance_km": 4.2, "eta_minutes": 31}
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// DI。httpClientがnilならhttp.DefaultClient。
func NewClient(baseURL string, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

type routeResponse struct {
	DistanceKm float64 `json:"distance_km"`
	EtaMinutes int     `json:"eta_minutes"`
}

func (c *Client) Estimate(ctx context.Context, address string, vendor model.LatLng) (quote.DistanceResult, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("vendor_lat", strconv.FormatFloat(vendor.Lat, 'f', -1, 64))
	q.Set("vendor_lng", strconv.FormatFloat(vendor.Lng, 'f', -1, 64))
	q.Set("mode", "driving")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/route?"+q.Encode(), nil)
	if err != nil {
		return quote.DistanceResult{}, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return quote.DistanceResult{}, err
	}
	defer resp.Body.Close()

	//非2xxはエラー扱い（呼び出し側がフォールバックする）
	if resp.StatusCode != http.StatusOK {
		return quote.DistanceResult{}, fmt.Errorf("distance api status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return quote.DistanceResult{}, err
	}

	return quote.DistanceResult{
		DistanceKm: body.DistanceKm,
		EtaMinutes: body.EtaMinutes,
	}, nil
}
