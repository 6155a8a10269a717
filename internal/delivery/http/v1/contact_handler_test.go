package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-publishing-backend/internal/delivery/http/middleware"
	v1 "go-publishing-backend/internal/delivery/http/v1"
	"go-publishing-backend/internal/formsession"
	"go-publishing-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAvailabilityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	grp := r.Group("/v1")
	v1.NewContactHandler(grp, grp, nil, formsession.DefaultConfig())
	return r
}

// serveWithin fails the test if the handler does not answer promptly, so a
// request that would walk the calendar unboundedly is caught instead of
// hanging the suite.
func serveWithin(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(w, req)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("handler did not answer %s in time", url)
	}
	return w
}

func TestAvailability(t *testing.T) {
	r := newAvailabilityRouter()
	now := time.Now()

	t.Run("Should serve the current month by default", func(t *testing.T) {
		w := serveWithin(t, r, "/v1/contact/availability")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"grid"`)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"year":%d`, now.Year()))
	})

	t.Run("Should serve a requested month inside the window", func(t *testing.T) {
		year, month := now.Year(), int(now.Month())
		// one month ahead
		month++
		if month > 12 {
			month = 1
			year++
		}
		w := serveWithin(t, r, fmt.Sprintf("/v1/contact/availability?year=%d&month=%d", year, month))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"month":%d`, month))
	})

	t.Run("Should reject an absurd year without stalling", func(t *testing.T) {
		w := serveWithin(t, r, "/v1/contact/availability?year=1000000000000&month=1")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "booking window")
	})

	t.Run("Should reject years outside the booking window", func(t *testing.T) {
		w := serveWithin(t, r, fmt.Sprintf("/v1/contact/availability?year=%d&month=6", now.Year()+3))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serveWithin(t, r, fmt.Sprintf("/v1/contact/availability?year=%d&month=6", now.Year()-2))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject an out-of-range month", func(t *testing.T) {
		w := serveWithin(t, r, fmt.Sprintf("/v1/contact/availability?year=%d&month=13", now.Year()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject a month without a year", func(t *testing.T) {
		w := serveWithin(t, r, "/v1/contact/availability?month=5")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject a year without a month", func(t *testing.T) {
		w := serveWithin(t, r, fmt.Sprintf("/v1/contact/availability?year=%d", now.Year()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
