package treasury

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestYearURL(t *testing.T) {
	f := NewHTTPFetcher("https://example.test/rates.csv", 0)
	u := f.yearURL("2025")

	for _, part := range []string{
		"https://example.test/rates.csv/2025/all?",
		"type=daily_treasury_yield_curve",
		"field_tdr_date_value=2025",
		"_format=csv",
		"&page",
	} {
		if !strings.Contains(u, part) {
			t.Fatalf("url %q missing %q", u, part)
		}
	}
}

func TestNewHTTPFetcher_Defaults(t *testing.T) {
	f := NewHTTPFetcher("", 0)
	if f.baseURL != DefaultBaseURL {
		t.Fatalf("want default base url, got %q", f.baseURL)
	}
	if f.client.Timeout != DefaultTimeout {
		t.Fatalf("want default timeout, got %v", f.client.Timeout)
	}
}

func TestFetchYear_OK(t *testing.T) {
	const body = "Date,\"1 Mo\"\n09/26/2025,5.66\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/2025/all") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, time.Second)
	got, err := f.FetchYear(context.Background(), "2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != body {
		t.Fatalf("want body %q, got %q", body, got)
	}
}

func TestFetchYear_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, time.Second)
	_, err := f.FetchYear(context.Background(), "2025")

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FetchError, got %T (%v)", err, err)
	}
	if fe.Kind != KindStatus || fe.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected error: %+v", fe)
	}
	if !strings.Contains(fe.Error(), "503") {
		t.Fatalf("error message should carry status: %q", fe.Error())
	}
}

func TestFetchYear_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 20*time.Millisecond)
	_, err := f.FetchYear(context.Background(), "2025")

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FetchError, got %T (%v)", err, err)
	}
	if fe.Kind != KindTimeout {
		t.Fatalf("want timeout kind, got %q (%v)", fe.Kind, fe)
	}
}

func TestFetchYear_Network(t *testing.T) {
	// Closed server port: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewHTTPFetcher(url, time.Second)
	_, err := f.FetchYear(context.Background(), "2025")

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FetchError, got %T (%v)", err, err)
	}
	if fe.Kind != KindNetwork {
		t.Fatalf("want network kind, got %q (%v)", fe.Kind, fe)
	}
}
