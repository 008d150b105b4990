package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/api/shared"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts handlers the way the server does, with the user ID
// injected in place of the auth middleware when userID is not uuid.Nil.
func newTestRouter(userID uuid.UUID, mount func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := shared.WithTraceID(req.Context(), "")
			if userID != uuid.Nil {
				ctx = shared.WithUserID(ctx, userID)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	mount(r)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader).WithContext(context.Background())
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(strings.NewReader(rr.Body.String())).Decode(v))
}
