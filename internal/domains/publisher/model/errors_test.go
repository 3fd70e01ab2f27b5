package model

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisherError_Error(t *testing.T) {
	assert.Equal(t, "[PUBLISHER_NOT_FOUND] Publisher not found", NewPublisherNotFound().Error())

	wrapped := NewCreatePublisherError(errors.New("disk full"))
	assert.Equal(t, "[CREATE_PUBLISHER_ERROR] Failed to create publisher: disk full", wrapped.Error())
}

func TestPublisherError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("service: %w", NewListPublisherError(cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeListPublisher, GetErrorCode(err))
}

func TestIsPublisherNotFound(t *testing.T) {
	assert.True(t, IsPublisherNotFound(ErrPublisherNotFound))
	assert.True(t, IsPublisherNotFound(fmt.Errorf("wrapped: %w", NewPublisherNotFound())))
	assert.False(t, IsPublisherNotFound(NewInvalidID("x")))
	assert.False(t, IsPublisherNotFound(errors.New("publisher not found")))
}

func TestMapErrorToHTTP(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"nil", nil, http.StatusOK, ""},
		{"not found", NewPublisherNotFound(), http.StatusNotFound, CodePublisherNotFound},
		{"invalid id", NewInvalidID("abc"), http.StatusBadRequest, CodeInvalidID},
		{"invalid payload", NewInvalidPayload(errors.New("EOF")), http.StatusBadRequest, CodeInvalidPayload},
		{"persistence", NewUpdatePublisherError(errors.New("timeout")), http.StatusInternalServerError, CodeUpdatePublisher},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _, code := MapErrorToHTTP(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestPublisherMapping(t *testing.T) {
	req := &PublisherRequest{Name: "Aleph", Code: "ALP"}
	entity := req.ToEntity()
	assert.Zero(t, entity.ID)
	assert.Equal(t, "Aleph", entity.Name)

	entity.ID = 7
	assert.Equal(t, &PublisherResponse{ID: 7, Name: "Aleph", Code: "ALP"}, entity.ToResponse())
}
