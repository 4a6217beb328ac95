package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const costResponseBody = `{
	"rajaongkir": {
		"status": {"code": 200, "description": "OK"},
		"results": [
			{
				"code": "jne",
				"costs": [
					{"service": "REG", "cost": [{"value": 18000, "etd": "2-3"}]},
					{"service": "YES", "cost": [{"value": 30000, "etd": "1"}]}
				]
			}
		]
	}
}`

func TestShippingGetCost(t *testing.T) {
	var gotRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotRequest = r
		w.Write([]byte(costResponseBody))
	}))
	defer server.Close()

	svc := NewShippingServiceWith(server.URL, "test-key", "153", server.Client())

	cost, err := svc.GetCost("501", 2500, "jne")
	assert.NoError(t, err)
	assert.Equal(t, 18000, cost)

	assert.Equal(t, "/cost", gotRequest.URL.Path)
	assert.Equal(t, "test-key", gotRequest.Header.Get("key"))
	assert.Equal(t, "153", gotRequest.PostFormValue("origin"))
	assert.Equal(t, "501", gotRequest.PostFormValue("destination"))
	assert.Equal(t, "2500", gotRequest.PostFormValue("weight"))
	assert.Equal(t, "jne", gotRequest.PostFormValue("courier"))
}

func TestShippingGetCostMinimumWeight(t *testing.T) {
	var gotWeight string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotWeight = r.PostFormValue("weight")
		w.Write([]byte(costResponseBody))
	}))
	defer server.Close()

	svc := NewShippingServiceWith(server.URL, "test-key", "153", server.Client())

	_, err := svc.GetCost("501", 200, "jne")
	assert.NoError(t, err)
	assert.Equal(t, "1000", gotWeight)
}

func TestShippingGetCostServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	svc := NewShippingServiceWith(server.URL, "test-key", "153", server.Client())

	_, err := svc.GetCost("501", 1000, "jne")
	assert.Error(t, err)
}

func TestPickFirstCost(t *testing.T) {
	t.Run("respons kosong", func(t *testing.T) {
		_, err := PickFirstCost(&ShippingCostResponse{})
		assert.Error(t, err)
	})
}
