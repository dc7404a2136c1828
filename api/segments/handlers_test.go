package segments_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apisegments "github.com/ameen-roayan/stremio-cleanstream/api/segments"
	"github.com/ameen-roayan/stremio-cleanstream/api/types"
	"github.com/ameen-roayan/stremio-cleanstream/internal/database"
	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/cache"
	segmentssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/segments"
)

type SegmentTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	deps   *types.Dependencies
	router *gin.Engine
}

func setupSegmentTestSuite(t *testing.T) *SegmentTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Segment{})
	require.NoError(t, err, "Failed to migrate test database")

	skipCache := cache.NewMemoryCache(time.Minute, 0, 0)
	t.Cleanup(skipCache.Stop)

	deps := &types.Dependencies{
		DB:             &database.DB{DB: db},
		SegmentService: segmentssvc.NewService(segmentssvc.NewRepository(db)),
		SkipCache:      skipCache,
	}

	router := gin.New()
	titles := router.Group("/titles")
	apisegments.RegisterTitleRoutes(titles, deps)
	direct := router.Group("/segments")
	apisegments.RegisterRoutes(direct, deps)

	return &SegmentTestSuite{t: t, db: db, deps: deps, router: router}
}

func (suite *SegmentTestSuite) createTestSegment(titleID string) models.Segment {
	segment := models.Segment{
		TitleID:  titleID,
		StartMs:  100000,
		EndMs:    160000,
		Category: "violence",
		Severity: models.SeverityHigh,
		Channel:  models.ChannelBoth,
	}

	result := suite.db.Create(&segment)
	require.NoError(suite.t, result.Error, "Failed to create test segment")

	return segment
}

func (suite *SegmentTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(suite.t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestCreateSegmentHandler(t *testing.T) {
	suite := setupSegmentTestSuite(t)

	w := suite.request(http.MethodPost, "/titles/tt0133093/segments", map[string]interface{}{
		"start_ms": 100000,
		"end_ms":   160000,
		"category": "punching",
		"severity": "high",
		"comment":  "lobby shootout",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response types.SingleSegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "tt0133093", response.Segment.TitleID)
	assert.Equal(t, "violence", response.Segment.Category)
	assert.Equal(t, "punching", response.Segment.Subcategory)
	assert.NotEmpty(t, response.Segment.UUID)
}

func TestCreateSegmentHandlerValidation(t *testing.T) {
	suite := setupSegmentTestSuite(t)

	w := suite.request(http.MethodPost, "/titles/tt0133093/segments", map[string]interface{}{
		"start_ms": 5000,
		"end_ms":   1000,
		"category": "violence",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestListSegmentsHandler(t *testing.T) {
	suite := setupSegmentTestSuite(t)
	suite.createTestSegment("tt0133093")
	suite.createTestSegment("tt0133093")
	suite.createTestSegment("tt0068646")

	w := suite.request(http.MethodGet, "/titles/tt0133093/segments", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response types.SegmentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Len(t, response.Segments, 2)
}

func TestUpdateSegmentHandler(t *testing.T) {
	suite := setupSegmentTestSuite(t)
	segment := suite.createTestSegment("tt0133093")

	w := suite.request(http.MethodPut, fmt.Sprintf("/segments/%d", segment.ID), map[string]interface{}{
		"start_ms": 99000,
		"end_ms":   161000,
		"severity": "medium",
		"comment":  "extended cut",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response types.SingleSegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(99000), response.Segment.StartMs)
	assert.Equal(t, "medium", response.Segment.Severity)
}

func TestUpdateSegmentHandlerNotFound(t *testing.T) {
	suite := setupSegmentTestSuite(t)

	w := suite.request(http.MethodPut, "/segments/999", map[string]interface{}{
		"start_ms": 0,
		"end_ms":   1000,
	})

	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestDeleteSegmentHandler(t *testing.T) {
	suite := setupSegmentTestSuite(t)
	segment := suite.createTestSegment("tt0133093")

	w := suite.request(http.MethodDelete, fmt.Sprintf("/segments/%d", segment.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Segment{}).Where("title_id = ?", "tt0133093").Count(&count)
	assert.Zero(t, count)
}

func TestVoteHandler(t *testing.T) {
	suite := setupSegmentTestSuite(t)
	segment := suite.createTestSegment("tt0133093")

	w := suite.request(http.MethodPost, fmt.Sprintf("/segments/%d/vote", segment.ID),
		map[string]interface{}{"direction": "up"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response types.SingleSegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Segment.Upvotes)

	w = suite.request(http.MethodPost, fmt.Sprintf("/segments/%d/vote", segment.ID),
		map[string]interface{}{"direction": "sideways"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportHandler(t *testing.T) {
	suite := setupSegmentTestSuite(t)

	doc := strings.Join([]string{
		"WEBVTT Movie Content Filter 1.1.0",
		"",
		"00:01:40.000 --> 00:02:40.000",
		"punching=high",
		"swearing=low=audio",
		"",
	}, "\n")

	req := httptest.NewRequest(http.MethodPost, "/titles/tt0133093/import", strings.NewReader(doc))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response types.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Imported)

	var count int64
	suite.db.Model(&models.Segment{}).Where("title_id = ?", "tt0133093").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestImportHandlerRejectsBadHeader(t *testing.T) {
	suite := setupSegmentTestSuite(t)

	req := httptest.NewRequest(http.MethodPost, "/titles/tt0133093/import",
		strings.NewReader("WEBVTT\n\nnot a filter file\n"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestExportHandler(t *testing.T) {
	suite := setupSegmentTestSuite(t)
	suite.createTestSegment("tt0133093")

	w := suite.request(http.MethodGet, "/titles/tt0133093/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "WEBVTT Movie Content Filter"), body)
	assert.Contains(t, body, "00:01:40.000 --> 00:02:40.000")
	assert.Contains(t, body, "violence=high")
}

func TestWriteInvalidatesCachedPayloads(t *testing.T) {
	suite := setupSegmentTestSuite(t)

	key := cache.Key("skips", "tt0133093", "violence=low", "json")
	suite.deps.SkipCache.Set(key, "stale", 0)

	w := suite.request(http.MethodPost, "/titles/tt0133093/segments", map[string]interface{}{
		"start_ms": 0,
		"end_ms":   1000,
		"category": "violence",
		"severity": "low",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	_, ok := suite.deps.SkipCache.Get(key)
	assert.False(t, ok, "cached payload survived a write")
}
