package models_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorecast/shorecast/internal/api/models"
)

func TestProblemWrite(t *testing.T) {
	problem := models.NewNotFound("trace-123", "Beach not found").
		WithInstance("/conditions/atlantis")

	rec := httptest.NewRecorder()
	problem.Write(rec)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))

	var decoded models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, models.ProblemTypeNotFound, decoded.Type)
	assert.Equal(t, "Not found", decoded.Title)
	assert.Equal(t, "Beach not found", decoded.Detail)
	assert.Equal(t, "/conditions/atlantis", decoded.Instance)
	assert.Equal(t, "trace-123", decoded.TraceID)
}

func TestNewBadRequestCarriesFieldErrors(t *testing.T) {
	errors := []models.FieldError{{Field: "mode", Message: "must be swimming or dipping", Code: "invalid"}}
	problem := models.NewBadRequest("trace-456", "Validation failed", errors)

	assert.Equal(t, http.StatusBadRequest, problem.Status)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "mode", problem.Errors[0].Field)
}

func TestProblemTypesUseShorecastNamespace(t *testing.T) {
	for _, problemType := range []string{
		models.ProblemTypeValidation,
		models.ProblemTypeNotFound,
		models.ProblemTypeTooManyRequests,
		models.ProblemTypeInternal,
	} {
		assert.Contains(t, problemType, "https://api.shorecast.uk/problems/")
	}
}
