package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prf-platform/prfweb/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, session.NewMemoryStore()), srv
}

func TestRequestPathPrefix(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"projects":[]}`))
	}))

	if _, err := client.Projects(context.Background()); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if gotPath != "/api/projects" {
		t.Errorf("got path %q, want /api/projects", gotPath)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{"token stored", "abc.def.ghi", "Bearer abc.def.ghi"},
		{"logged out", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				w.Write([]byte(`{"orders":[]}`))
			}))

			if tt.token != "" {
				if err := client.SetAuthToken(tt.token); err != nil {
					t.Fatalf("SetAuthToken: %v", err)
				}
			}

			if _, err := client.Orders(context.Background()); err != nil {
				t.Fatalf("Orders: %v", err)
			}
			if gotHeader != tt.wantHeader {
				t.Errorf("got Authorization %q, want %q", gotHeader, tt.wantHeader)
			}
		})
	}
}

func TestPublicCallOmitsToken(t *testing.T) {
	var gotHeader string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"name":"n","email":"e@x.com","message":"hi","request_type":"information"}`))
	}))

	if err := client.SetAuthToken("stored-token"); err != nil {
		t.Fatalf("SetAuthToken: %v", err)
	}

	_, err := client.SubmitContact(context.Background(), ContactParams{
		Name:        "n",
		Email:       "e@x.com",
		Message:     "hi",
		RequestType: RequestTypeInformation,
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if gotHeader != "" {
		t.Errorf("public call sent Authorization %q, want none", gotHeader)
	}
}

func TestAPIErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode int
	}{
		{"server message used", http.StatusBadRequest, `{"message":"email already registered"}`, "email already registered", 400},
		{"generic fallback", http.StatusNotFound, `not json`, "HTTP error! status: 404", 404},
		{"empty body", http.StatusForbidden, ``, "HTTP error! status: 403", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.Login(context.Background(), "e@x.com", "pw")
			if err == nil {
				t.Fatal("want error, got nil")
			}

			var cerr *ClientError
			if !errors.As(err, &cerr) {
				t.Fatalf("want *ClientError, got %T", err)
			}
			if cerr.Message != tt.wantMsg {
				t.Errorf("got message %q, want %q", cerr.Message, tt.wantMsg)
			}
			if cerr.StatusCode != tt.wantCode {
				t.Errorf("got status %d, want %d", cerr.StatusCode, tt.wantCode)
			}
			if cerr.IsClientSide() {
				t.Error("HTTP error reported as client-side")
			}
		})
	}
}

func TestConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // guaranteed refused connection

	client := NewClient(srv.URL, session.NewMemoryStore())

	_, err := client.Login(context.Background(), "e@x.com", "pw")
	if err == nil {
		t.Fatal("want error, got nil")
	}

	var cerr *ClientError
	if !errors.As(err, &cerr) {
		t.Fatalf("want *ClientError, got %T", err)
	}
	if cerr.Message != "Network error occurred" {
		t.Errorf("got message %q, want %q", cerr.Message, "Network error occurred")
	}
	if !cerr.IsClientSide() {
		t.Error("transport failure not reported as client-side")
	}
	if cerr.Unwrap() == nil {
		t.Error("underlying transport error not preserved")
	}
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"products":[{"id":1,"name":"p","price":100,"stock":2}]}`))
	}))

	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("Products after retries: %v", err)
	}
	if len(products) != 1 || products[0].Name != "p" {
		t.Errorf("got %+v, want one product named p", products)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("got %d attempts, want 3", got)
	}
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetProduct(context.Background(), 99)
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("got %d attempts, want 1 (4xx must not retry)", got)
	}
}

func TestGetGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.Products(context.Background())
	if err == nil {
		t.Fatal("want error, got nil")
	}

	var cerr *ClientError
	if !errors.As(err, &cerr) {
		t.Fatalf("want *ClientError, got %T", err)
	}
	if cerr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("got status %d, want 503", cerr.StatusCode)
	}
	if got := calls.Load(); got != int32(getRetryAttempts) {
		t.Errorf("got %d attempts, want %d", got, getRetryAttempts)
	}
}

func TestLoginStoresToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"issued-token","user":{"id":1,"name":"n","email":"e@x.com","role":"user"}}`))
	}))

	res, err := client.Login(context.Background(), "e@x.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "issued-token" {
		t.Errorf("got token %q, want issued-token", res.Token)
	}
	if got := client.AuthToken(); got != "issued-token" {
		t.Errorf("stored token %q, want issued-token", got)
	}

	if err := client.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if got := client.AuthToken(); got != "" {
		t.Errorf("token %q still stored after logout", got)
	}
}

func TestValidationRejectedBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	tests := []struct {
		name string
		call func() error
	}{
		{"paid project without prices", func() error {
			_, err := client.CreateProject(context.Background(), ProjectParams{Name: "p", Description: "d", IsFree: false})
			return err
		}},
		{"negative stock", func() error {
			_, err := client.CreateProduct(context.Background(), ProductParams{Name: "p", Description: "d", Price: 10, Stock: -1})
			return err
		}},
		{"rating out of range", func() error {
			_, err := client.AddServiceProviderReview(context.Background(), 1, ReviewParams{Name: "n", Email: "e@x.com", Rating: 6})
			return err
		}},
		{"unknown request type", func() error {
			_, err := client.SubmitContact(context.Background(), ContactParams{Name: "n", Email: "e@x.com", Message: "m", RequestType: "spam"})
			return err
		}},
		{"unknown report period", func() error {
			_, err := client.GetReport(context.Background(), "weekly")
			return err
		}},
		{"bad subscription level", func() error {
			_, err := client.Checkout(context.Background(), CheckoutParams{Operator: "op", Phone: "600000000", Level: "Gold"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("want validation error, got nil")
			}
			var cerr *ClientError
			if !errors.As(err, &cerr) {
				t.Fatalf("want *ClientError, got %T", err)
			}
			if !cerr.IsClientSide() {
				t.Errorf("validation error has status %d, want 0", cerr.StatusCode)
			}
		})
	}

	if got := calls.Load(); got != 0 {
		t.Errorf("validation failures made %d network calls, want 0", got)
	}
}

func TestMultipartDispatch(t *testing.T) {
	var gotContentType, gotMethod string
	var gotFields map[string]string
	var gotFile string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method

		if err := r.ParseMultipartForm(4 << 20); err == nil {
			gotFields = map[string]string{}
			for k, v := range r.MultipartForm.Value {
				if len(v) > 0 {
					gotFields[k] = v[0]
				}
			}
			if files := r.MultipartForm.File["image"]; len(files) > 0 {
				gotFile = files[0].Filename
			}
		}
		w.Write([]byte(`{"id":7,"name":"p","description":"d","is_free":true}`))
	}))

	_, err := client.CreateProject(context.Background(), ProjectParams{
		Name:        "p",
		Description: "d",
		IsFree:      true,
		Image: &Upload{
			Filename: "cover.png",
			Size:     128,
			Reader:   strings.NewReader(strings.Repeat("x", 128)),
		},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("got method %s, want POST", gotMethod)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data; boundary=") {
		t.Errorf("got content type %q, want multipart with boundary", gotContentType)
	}
	if gotFields["name"] != "p" {
		t.Errorf("form field name=%q, want p", gotFields["name"])
	}
	if gotFile != "cover.png" {
		t.Errorf("got file %q, want cover.png", gotFile)
	}
}

func TestJSONDispatchWithoutUpload(t *testing.T) {
	var gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"id":7,"name":"p","description":"d","is_free":true}`))
	}))

	_, err := client.CreateProject(context.Background(), ProjectParams{
		Name:        "p",
		Description: "d",
		IsFree:      true,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("got content type %q, want application/json", gotContentType)
	}
}

func TestSubscribeRecordsVIP(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/checkout":
			w.Write([]byte(`{"reference":"ref-1","total_amount":5000,"status":"pending"}`))
		case "/api/payment/confirm":
			w.Write([]byte(`{"reference":"ref-1","status":"confirmed"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	if err := client.SetAuthToken("tok"); err != nil {
		t.Fatalf("SetAuthToken: %v", err)
	}

	sub, err := client.Subscribe(context.Background(), 3, "Premium", "mtn", "670000000")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if sub.Plan != "Premium" || sub.Status != "confirmed" {
		t.Errorf("got %+v, want Premium/confirmed", sub)
	}

	stored, ok := client.VIPSubscription()
	if !ok {
		t.Fatal("subscription not recorded")
	}
	if !stored.Active() {
		t.Error("confirmed subscription reported inactive")
	}
}
