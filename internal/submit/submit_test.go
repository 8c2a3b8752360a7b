package submit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnnybahia/marcasceara/constants"
	"github.com/johnnybahia/marcasceara/internal/entity"
)

func sampleRecord() entity.OrderRecord {
	return entity.OrderRecord{
		OrderDate:    "20/04/2024",
		ReceivedDate: "10/03/2024",
		SourceFile:   "dilly.pdf",
		Client:       string(constants.VendorDilly),
		Brand:        "Olympikus",
		Location:     "Brejo Santo",
		Quantity:     1200,
		Unit:         constants.UnitPair,
		Value:        "R$ 15.000,50",
		OrderNumber:  "4532178",
	}
}

func TestValidatePayload(t *testing.T) {
	t.Parallel()

	good, err := json.Marshal(Envelope{Pedidos: []entity.OrderRecord{sampleRecord()}})
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidatePayload(good); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	// Sentinel fields still satisfy the contract.
	rec := sampleRecord()
	rec.OrderNumber = constants.NotFound
	rec.Location = constants.NotFound
	rec.Value = "R$ 0,00"
	withSentinels, _ := json.Marshal(Envelope{Pedidos: []entity.OrderRecord{rec}})
	if err := ValidatePayload(withSentinels); err != nil {
		t.Fatalf("sentinel payload rejected: %v", err)
	}

	bad := strings.Replace(string(good), `"20/04/2024"`, `"2024-04-20"`, 1)
	if err := ValidatePayload([]byte(bad)); err == nil {
		t.Fatal("ISO date must be rejected")
	}

	if err := ValidatePayload([]byte(`{"pedidos":[]}`)); err == nil {
		t.Fatal("empty batch must be rejected")
	}
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	var got Envelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("bad body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	if err := c.Send(context.Background(), []entity.OrderRecord{sampleRecord()}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(got.Pedidos) != 1 || got.Pedidos[0].OrderNumber != "4532178" {
		t.Fatalf("server saw %+v", got)
	}
}

func TestClient_SendNon2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	if err := c.Send(context.Background(), []entity.OrderRecord{sampleRecord()}); err == nil {
		t.Fatal("non-2xx must be an error")
	}
}
