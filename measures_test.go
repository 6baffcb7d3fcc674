package ondilo

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"
)

func TestGetLastMeasures(t *testing.T) {
	t.Run("defaults to all measure types", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != apiPrefix+"/pools/3/lastmeasures" {
				t.Errorf("path = %q", r.URL.Path)
			}
			got := r.URL.Query()["types[]"]
			want := []string{"temperature", "ph", "orp", "salt", "battery", "tds", "rssi"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("types[] = %v, want %v", got, want)
			}
			w.Write([]byte(`[{"data_type":"temperature","value":24.5,"value_time":"2024-06-01 12:00:00","is_valid":true}]`))
		}))

		measures, err := client.GetLastMeasures(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(measures) != 1 {
			t.Fatalf("got %d measures, want 1", len(measures))
		}
		if measures[0].DataType != MeasureTemperature || measures[0].Value != 24.5 {
			t.Errorf("measure = %+v", measures[0])
		}
		if !measures[0].IsValid {
			t.Error("measure should be valid")
		}
	})

	t.Run("explicit measure types", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.URL.Query()["types[]"]
			want := []string{"ph", "orp"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("types[] = %v, want %v", got, want)
			}
			w.Write([]byte(`[]`))
		}))

		if _, err := client.GetLastMeasures(context.Background(), 3, MeasurePH, MeasureORP); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued on validation failure")
		}))

		if _, err := client.GetLastMeasures(context.Background(), -1); !errors.Is(err, ErrInvalidPoolID) {
			t.Errorf("error = %v, want ErrInvalidPoolID", err)
		}
		if _, err := client.GetLastMeasures(context.Background(), 3, MeasureType("")); !errors.Is(err, ErrEmptyMeasureType) {
			t.Errorf("error = %v, want ErrEmptyMeasureType", err)
		}
	})
}

func TestGetMeasureHistory(t *testing.T) {
	t.Run("builds type and period query", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != apiPrefix+"/pools/3/measures" {
				t.Errorf("path = %q", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("type") != "temperature" {
				t.Errorf("type = %q, want temperature", q.Get("type"))
			}
			if q.Get("period") != "week" {
				t.Errorf("period = %q, want week", q.Get("period"))
			}
			w.Write([]byte(`[{"data_type":"temperature","value":23.1,"value_time":"2024-06-01 08:00:00","is_valid":true},{"data_type":"temperature","value":24.0,"value_time":"2024-06-01 09:00:00","is_valid":true}]`))
		}))

		measures, err := client.GetMeasureHistory(context.Background(), 3, MeasureTemperature, PeriodWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(measures) != 2 {
			t.Fatalf("got %d measures, want 2", len(measures))
		}
		if measures[1].Value != 24.0 {
			t.Errorf("second value = %v, want 24.0", measures[1].Value)
		}
	})

	t.Run("validation", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued on validation failure")
		}))

		if _, err := client.GetMeasureHistory(context.Background(), 0, MeasurePH, PeriodDay); !errors.Is(err, ErrInvalidPoolID) {
			t.Errorf("error = %v, want ErrInvalidPoolID", err)
		}
		if _, err := client.GetMeasureHistory(context.Background(), 3, "", PeriodDay); !errors.Is(err, ErrEmptyMeasureType) {
			t.Errorf("error = %v, want ErrEmptyMeasureType", err)
		}
		if _, err := client.GetMeasureHistory(context.Background(), 3, MeasurePH, ""); !errors.Is(err, ErrEmptyPeriod) {
			t.Errorf("error = %v, want ErrEmptyPeriod", err)
		}
	})
}

func TestAllMeasureTypes(t *testing.T) {
	types := AllMeasureTypes()
	if len(types) != 7 {
		t.Errorf("got %d measure types, want 7", len(types))
	}
	if types[0] != MeasureTemperature {
		t.Errorf("first type = %q, want temperature", types[0])
	}
}
