package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_StatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		want int
		cat  Category
	}{
		{BadRequestError(nil, "bad"), http.StatusBadRequest, CategoryDataError},
		{ResourceNotFoundError(nil, "missing"), http.StatusNotFound, CategoryResourceNotFound},
		{ConflictError(nil, "dup"), http.StatusConflict, CategoryDataConflict},
		{DependencyError(nil, "store down"), http.StatusBadGateway, CategoryDependencyFailure},
		{GeneralError(nil), http.StatusInternalServerError, CategoryGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			var svcErr *ServiceError
			if !errors.As(tt.err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %T", tt.err)
			}
			assert.Equal(t, tt.want, svcErr.StatusCode())
			assert.True(t, Is(tt.err, tt.cat))
			assert.Equal(t, tt.cat, CategoryOf(tt.err))
		})
	}
}

func TestServiceError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := DependencyError(fmt.Errorf("lookup: %w", cause), "failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "lookup: connection refused", err.Error())
	assert.True(t, IsInternalError(err))
}

func TestCategoryOf_PlainErrors(t *testing.T) {
	assert.Equal(t, CategoryNoError, CategoryOf(nil))
	assert.Equal(t, CategoryGeneralError, CategoryOf(errors.New("boom")))
	assert.False(t, IsInternalError(BadRequestError(nil, "bad")))
	assert.True(t, IsInternalError(errors.New("boom")))
}
