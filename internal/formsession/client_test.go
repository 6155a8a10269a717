package formsession_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-publishing-backend/internal/formsession"

	"github.com/stretchr/testify/assert"
)

func TestHTTPSubmitter(t *testing.T) {
	sub := formsession.Submission{
		Name:            "Jane Author",
		Email:           "jane@example.com",
		Message:         "Manuscript consultation please.",
		AppointmentDate: "2026-03-20",
	}

	t.Run("Should post JSON to the contact endpoint", func(t *testing.T) {
		var gotPath, gotType string
		var gotBody formsession.Submission
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		err := formsession.NewHTTPSubmitter(srv.URL+"/v1/", nil).Submit(context.Background(), sub)

		assert.NoError(t, err)
		assert.Equal(t, "/v1/contact", gotPath)
		assert.Equal(t, "application/json", gotType)
		assert.Equal(t, sub, gotBody)
	})

	t.Run("Should report a non-2xx status as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		err := formsession.NewHTTPSubmitter(srv.URL, nil).Submit(context.Background(), sub)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Should report a transport failure as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		err := formsession.NewHTTPSubmitter(srv.URL, nil).Submit(context.Background(), sub)
		assert.Error(t, err)
	})
}
