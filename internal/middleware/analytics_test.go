package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vendornet/vendor_management_app/internal/middleware"
)

// capturedEvent records one Enqueue call made by the middleware.
type capturedEvent struct {
	DistinctID string
	Event      string
	Properties map[string]any
}

// fakeEventSink implements middleware.EventSink for tests.
type fakeEventSink struct {
	initialized bool
	events      []capturedEvent
}

func (f *fakeEventSink) IsInitialized() bool { return f.initialized }

func (f *fakeEventSink) Enqueue(distinctID, event string, properties map[string]any) {
	f.events = append(f.events, capturedEvent{DistinctID: distinctID, Event: event, Properties: properties})
}

var _ middleware.EventSink = (*fakeEventSink)(nil)

type AnalyticsMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	sink      *fakeEventSink
	jwtSecret string
}

func (suite *AnalyticsMiddlewareTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "vma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	require.NoError(suite.T(), err)
	return signed
}

func (suite *AnalyticsMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.sink = &fakeEventSink{initialized: true}

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1",
		middleware.AuthMiddleware(suite.jwtSecret),
		middleware.AnalyticsMiddleware(suite.sink),
	)
	v1.GET("/vendors/:vendorID", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"vendorID": c.Param("vendorID")})
	})
	v1.GET("/broken", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
}

func (suite *AnalyticsMiddlewareTestSuite) serve(path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AnalyticsMiddlewareTestSuite) TestCapturesEventForSuccessfulRequest() {
	userID := uuid.NewString()
	vendorID := uuid.NewString()

	w := suite.serve("/api/v1/vendors/"+vendorID, suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, w.Code)
	suite.Require().Len(suite.sink.events, 1)

	event := suite.sink.events[0]
	suite.Equal(userID, event.DistinctID)
	suite.Equal("api_v1_vendors_:vendorID", event.Event)
	suite.Equal(http.MethodGet, event.Properties["method"])
	suite.Equal(http.StatusOK, event.Properties["status_code"])

	params, ok := event.Properties["params"].(map[string]string)
	suite.Require().True(ok)
	suite.Equal(vendorID, params["vendorID"])
}

func (suite *AnalyticsMiddlewareTestSuite) TestSkipsFailedRequests() {
	w := suite.serve("/api/v1/broken", suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Empty(suite.sink.events)
}

func (suite *AnalyticsMiddlewareTestSuite) TestSkipsUnauthenticatedRequests() {
	w := suite.serve("/api/v1/vendors/"+uuid.NewString(), "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Empty(suite.sink.events)
}

func (suite *AnalyticsMiddlewareTestSuite) TestUninitializedSinkPassesThrough() {
	suite.sink.initialized = false

	w := suite.serve("/api/v1/vendors/"+uuid.NewString(), suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(suite.sink.events)
}

func TestAnalyticsMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsMiddlewareTestSuite))
}
