package addon_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ameen-roayan/stremio-cleanstream/api/addon"
	"github.com/ameen-roayan/stremio-cleanstream/api/types"
	"github.com/ameen-roayan/stremio-cleanstream/internal/database"
	"github.com/ameen-roayan/stremio-cleanstream/internal/models"
	segmentssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/segments"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/config"
)

func setupAddonRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, config.Init())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Segment{}))

	deps := &types.Dependencies{
		DB:             &database.DB{DB: db},
		SegmentService: segmentssvc.NewService(segmentssvc.NewRepository(db)),
	}

	router := gin.New()
	addon.RegisterRoutes(router, deps)
	return router, db
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestManifest(t *testing.T) {
	router, _ := setupAddonRouter(t)

	w := get(router, "/manifest.json")

	require.Equal(t, http.StatusOK, w.Code)

	var manifest map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &manifest))
	assert.Equal(t, "org.cleanstream.skips", manifest["id"])
	assert.Contains(t, manifest["resources"], "subtitles")
	assert.Contains(t, manifest["idPrefixes"], "tt")
}

func TestSubtitles(t *testing.T) {
	router, _ := setupAddonRouter(t)

	w := get(router, "/subtitles/movie/tt0133093.json")

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Subtitles []struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		} `json:"subtitles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Subtitles, 1)
	assert.Equal(t, "cleanstream-tt0133093", response.Subtitles[0].ID)
	assert.True(t, strings.HasSuffix(response.Subtitles[0].URL, "/subtitle/tt0133093.vtt"),
		response.Subtitles[0].URL)
}

func TestSubtitle(t *testing.T) {
	router, db := setupAddonRouter(t)

	segments := []models.Segment{
		{TitleID: "tt0133093", StartMs: 100000, EndMs: 160000, Category: "violence", Severity: "high", Channel: "both"},
		{TitleID: "tt0133093", StartMs: 300000, EndMs: 305000, Category: "language", Severity: "low", Channel: "audio"},
	}
	require.NoError(t, db.Create(&segments).Error)

	w := get(router, "/subtitle/tt0133093.vtt")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/vtt")

	// The default threshold is high, so only the high severity segment
	// makes it into the track.
	body := w.Body.String()
	assert.Contains(t, body, "1-skip")
	assert.NotContains(t, body, "2-skip")
	assert.Contains(t, body, "Skipping: Violence")
}
