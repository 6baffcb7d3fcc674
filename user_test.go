package ondilo

import (
	"context"
	"net/http"
	"testing"
)

func TestGetUserInfo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != apiPrefix+"/user/info" {
			t.Errorf("path = %q, want %q", r.URL.Path, apiPrefix+"/user/info")
		}
		w.Write([]byte(`{"lastname":"Doe","firstname":"John","email":"john@example.com"}`))
	}))

	info, err := client.GetUserInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Firstname != "John" || info.Lastname != "Doe" || info.Email != "john@example.com" {
		t.Errorf("info = %+v", info)
	}
}

func TestGetUserUnits(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != apiPrefix+"/user/units" {
			t.Errorf("path = %q, want %q", r.URL.Path, apiPrefix+"/user/units")
		}
		w.Write([]byte(`{"conductivity":"MICRO_SIEMENS_PER_CENTI_METER","temperature":"CELSIUS","volume":"CUBIC_METER","orp":"MILLI_VOLT"}`))
	}))

	units, err := client.GetUserUnits(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units.Temperature != "CELSIUS" {
		t.Errorf("temperature unit = %q, want CELSIUS", units.Temperature)
	}
	if units.Orp != "MILLI_VOLT" {
		t.Errorf("orp unit = %q, want MILLI_VOLT", units.Orp)
	}
}
