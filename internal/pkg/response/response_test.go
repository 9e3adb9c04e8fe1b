package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(handler func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOKWrapsSlices(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, []string{"a", "b"})
	})

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("body = %s, want {data: [...]}", w.Body.String())
	}
	if len(data) != 2 {
		t.Errorf("data has %d items, want 2", len(data))
	}
}

func TestOKPassesObjectsThrough(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, gin.H{"slug": "neon-city"})
	})

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, wrapped := body["data"]; wrapped {
		t.Errorf("object response was wrapped: %s", w.Body.String())
	}
	if body["slug"] != "neon-city" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		handler func(c *gin.Context)
		status  int
	}{
		{name: "bad request", handler: func(c *gin.Context) { BadRequest(c, "nope") }, status: http.StatusBadRequest},
		{name: "unauthorized", handler: Unauthorized, status: http.StatusUnauthorized},
		{name: "forbidden", handler: Forbidden, status: http.StatusForbidden},
		{name: "not found", handler: NotFound, status: http.StatusNotFound},
		{name: "conflict", handler: func(c *gin.Context) { Conflict(c, "dupe") }, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.handler)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var body struct {
				OK      int    `json:"ok"`
				Code    int    `json:"code"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.OK != 0 || body.Code != tt.status || body.Message == "" {
				t.Errorf("envelope = %+v", body)
			}
		})
	}
}

func TestInternalErrorNeverLeaks(t *testing.T) {
	w := record(func(c *gin.Context) {
		InternalError(c, errDetail{})
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); strings.Contains(got, "secret dsn") {
		t.Errorf("internal error leaked details: %s", got)
	}
}

type errDetail struct{}

func (errDetail) Error() string { return "dial tcp: secret dsn user:pass@host" }
