package sync

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/auth"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureCategory
	}{
		{"nil", nil, FailureNone},
		{"offline", api.ErrOffline, FailureOffline},
		{"session expired", api.ErrSessionExpired, FailureAuth},
		{"not authenticated", auth.ErrNotAuthenticated, FailureAuth},
		{"unauthorized", &api.Error{StatusCode: http.StatusUnauthorized}, FailureAuth},
		{"server error", &api.Error{StatusCode: http.StatusBadGateway}, FailureNetwork},
		{"bad request", &api.Error{StatusCode: http.StatusBadRequest}, FailureClient},
		{"plain error", errors.New("dial tcp: timeout"), FailureNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.err))
		})
	}
}
