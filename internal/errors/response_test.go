package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("Account not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	details := []string{"id: must be a positive integer"}
	response := NewErrorResponse(
		ValidationInvalidFormat,
		s.traceID,
		WithMessage("Invalid account id"),
		WithDetails(details...),
	)

	s.Equal("VALIDATION_003", response.Error.Code)
	s.Equal("Invalid account id", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

// TestNewValidationError_SortedDetails checks details come out in field order
func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	fieldErrors := map[string]string{
		"owner":  "is required",
		"name":   "is required",
		"number": "must be at most 34 characters long",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"name: is required",
		"number: must be at most 34 characters long",
		"owner: is required",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_EmptyFieldErrors() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := errors.New("SQL error: relation \"bank_accounts\" does not exist")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "SQL")
	s.NotContains(response.Error.Message, "bank_accounts")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

// TestToJSON_EmptyDetails tests JSON serialization omits empty details
func (s *ResponseTestSuite) TestToJSON_EmptyDetails() {
	jsonBytes, err := NewErrorResponse(AccountNotFound, s.traceID).ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorMap := jsonMap["error"].(map[string]interface{})
	_, hasDetails := errorMap["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Equal(s.traceID, errorMap["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		name           string
		code           ErrorCode
		expectedStatus int
	}{
		{"Validation General", ValidationGeneral, http.StatusBadRequest},
		{"Validation Invalid Format", ValidationInvalidFormat, http.StatusBadRequest},
		{"Account Not Found", AccountNotFound, http.StatusNotFound},
		{"Route Not Found", RequestRouteNotFound, http.StatusNotFound},
		{"Method Not Allowed", RequestMethodNotAllowed, http.StatusMethodNotAllowed},
		{"Entity Too Large", RequestEntityTooLarge, http.StatusRequestEntityTooLarge},
		{"Unsupported Media", RequestUnsupportedMedia, http.StatusUnsupportedMediaType},
		{"Rate Limit Exceeded", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"System Internal Error", SystemInternalError, http.StatusInternalServerError},
		{"System Unexpected Error", SystemUnexpectedError, http.StatusInternalServerError},
		{"System Database Error", SystemDatabaseError, http.StatusInternalServerError},
		{"System Service Unavailable", SystemServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestGetHTTPStatus_UnknownCode() {
	s.Equal(http.StatusInternalServerError, GetHTTPStatus("UNKNOWN_999"))
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	for _, code := range []ErrorCode{ValidationGeneral, AccountNotFound, SystemRateLimitExceeded} {
		response := NewErrorResponse(code, s.traceID)
		s.True(response.IsClientError(), string(code))
		s.False(response.IsServerError(), string(code))
	}

	for _, code := range []ErrorCode{SystemInternalError, SystemDatabaseError, SystemServiceUnavailable} {
		response := NewErrorResponse(code, s.traceID)
		s.True(response.IsServerError(), string(code))
		s.False(response.IsClientError(), string(code))
	}
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(AccountNotFound, s.traceID).String()

	s.Equal("[ACCOUNT_001] Account not found (trace: "+s.traceID+")", str)
}

// TestWithDetails_MultipleInvocations tests that the last WithDetails wins
func (s *ResponseTestSuite) TestWithDetails_MultipleInvocations() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
}
