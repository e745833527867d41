package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/ulid-service/pkg/log"
)

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), "req-1"))
		h(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestSuccess(t *testing.T) {
	w, resp := serve(t, func(c *gin.Context) { Success(c, gin.H{"id": "x"}) })
	if w.Code != http.StatusOK || !resp.Success || resp.Error != nil {
		t.Fatalf("got %d %+v", w.Code, resp)
	}
	if resp.RequestID != "req-1" {
		t.Fatalf("request id: got %q", resp.RequestID)
	}
}

func TestCreated(t *testing.T) {
	w, resp := serve(t, func(c *gin.Context) { Created(c, []string{"a"}) })
	if w.Code != http.StatusCreated || !resp.Success {
		t.Fatalf("got %d %+v", w.Code, resp)
	}
}

func TestBadRequest(t *testing.T) {
	w, resp := serve(t, func(c *gin.Context) { BadRequest(c, "nope") })
	if w.Code != http.StatusBadRequest || resp.Success {
		t.Fatalf("got %d %+v", w.Code, resp)
	}
	if resp.Error == nil || resp.Error.Code != CodeBadRequest || resp.Error.Message != "nope" {
		t.Fatalf("error: %+v", resp.Error)
	}
}

func TestInternalError(t *testing.T) {
	w, resp := serve(t, func(c *gin.Context) { InternalError(c, "boom") })
	if w.Code != http.StatusInternalServerError || resp.Error == nil || resp.Error.Code != CodeInternal {
		t.Fatalf("got %d %+v", w.Code, resp)
	}
}
