package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":1}}`, w.Body.String())
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Nil(t, body.Data)
	assert.Equal(t, &Error{Code: "BOOK_NOT_FOUND", Message: "Book not found"}, body.Error)
}

func TestCommonErrors(t *testing.T) {
	cases := []struct {
		fn     func(*gin.Context, string)
		status int
		code   string
	}{
		{BadRequest, http.StatusBadRequest, "BAD_REQUEST"},
		{NotFound, http.StatusNotFound, "NOT_FOUND"},
		{InternalServerError, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		tc.fn(c, "msg")

		assert.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), tc.code)
	}
}
