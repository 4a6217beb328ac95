package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ShippingCostResponse struktur respons API ongkir (gaya RajaOngkir)
type ShippingCostResponse struct {
	Rajaongkir struct {
		Status struct {
			Code        int    `json:"code"`
			Description string `json:"description"`
		} `json:"status"`
		Results []struct {
			Code  string `json:"code"`
			Costs []struct {
				Service string `json:"service"`
				Cost    []struct {
					Value int    `json:"value"`
					Etd   string `json:"etd"`
				} `json:"cost"`
			} `json:"costs"`
		} `json:"results"`
	} `json:"rajaongkir"`
}

// ShippingService klien API ongkir eksternal
type ShippingService struct {
	baseURL string
	apiKey  string
	origin  string
	client  *http.Client
}

func NewShippingService() *ShippingService {
	baseURL := os.Getenv("RAJAONGKIR_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.rajaongkir.com/starter"
	}
	origin := os.Getenv("RAJAONGKIR_ORIGIN")
	if origin == "" {
		origin = "153" // Jakarta Selatan
	}
	return &ShippingService{
		baseURL: baseURL,
		apiKey:  os.Getenv("RAJAONGKIR_API_KEY"),
		origin:  origin,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewShippingServiceWith untuk test, base URL dan key eksplisit
func NewShippingServiceWith(baseURL, apiKey, origin string, client *http.Client) *ShippingService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ShippingService{baseURL: baseURL, apiKey: apiKey, origin: origin, client: client}
}

// GetCost ambil ongkir untuk kota tujuan, berat (gram), dan kurir.
// Dipilih tarif pertama dari hasil, sama seperti perilaku API aslinya.
func (s *ShippingService) GetCost(destination string, weight int, courier string) (int, error) {
	if weight < 1000 {
		weight = 1000 // berat minimum penagihan 1 kg
	}

	form := url.Values{}
	form.Set("origin", s.origin)
	form.Set("destination", destination)
	form.Set("weight", strconv.Itoa(weight))
	form.Set("courier", courier)

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/cost", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var costResp ShippingCostResponse
	if err := json.NewDecoder(resp.Body).Decode(&costResp); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}

	return PickFirstCost(&costResp)
}

// PickFirstCost pilih tarif pertama dari respons ongkir
func PickFirstCost(resp *ShippingCostResponse) (int, error) {
	for _, result := range resp.Rajaongkir.Results {
		for _, c := range result.Costs {
			if len(c.Cost) > 0 {
				return c.Cost[0].Value, nil
			}
		}
	}
	return 0, errors.New("no shipping cost found")
}
