package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJSONContext(t *testing.T, method string, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(bodyBytes)
	}

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")

	return c, writer
}

func withUser(c *gin.Context, userID int) {
	c.Set(jwt.UserIDContextKey, userID)
}

func withPathID(c *gin.Context, id string) {
	c.Params = gin.Params{{Key: IDParamKey, Value: id}}
}

func errorCode(t *testing.T, writer *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &body))
	return body["code"]
}
