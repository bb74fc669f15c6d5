package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminToken = "test-token"

// newTestServer 构建完整路由与独立内存数据库
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Issue{},
		&models.Subscriber{},
		&models.ContactMessage{},
		&models.Update{},
		&models.Event{},
	))

	cfg := &config.Config{
		CandidateName: "Abraham Senteu",
		AdminToken:    testAdminToken,
		TemplateGlob:  "../../../templates/*.html",
		PublicDir:     "../../../public",
	}
	return SetupRouter(db, cfg), db
}

func doGET(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func doPOST(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestPublicPages(t *testing.T) {
	r, _ := newTestServer(t)

	for _, path := range []string{"/", "/about", "/manifesto", "/media", "/accountability", "/updates", "/events", "/issues", "/contact"} {
		w := doGET(r, path)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}

	w := doGET(r, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitIssueOverHTTP(t *testing.T) {
	r, db := newTestServer(t)

	w := doPOST(r, "/issues", url.Values{
		"full_name": {"Naserian K."},
		"area":      {"Shompole"},
		"category":  {"Water"},
		"urgency":   {"High"},
		"message":   {"Borehole pump has been down for two weeks"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MGD-2027-")

	var issue models.Issue
	require.NoError(t, db.First(&issue).Error)
	assert.Equal(t, models.StatusReceived, issue.Status)
	assert.Equal(t, models.UrgencyHigh, issue.Urgency)

	// 追踪页展示同一编号
	w = doGET(r, "/track/"+issue.Reference)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), issue.Reference)
}

func TestSubmitIssueMissingFields(t *testing.T) {
	r, db := newTestServer(t)

	w := doPOST(r, "/issues", url.Values{
		"area": {"Shompole"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")

	var count int64
	require.NoError(t, db.Model(&models.Issue{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTrackUnknownReference(t *testing.T) {
	r, _ := newTestServer(t)

	w := doGET(r, "/track/MGD-2027-000000000000-FFFF")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No issue found")
}

func TestSubscribeOverHTTP(t *testing.T) {
	r, db := newTestServer(t)

	w := doPOST(r, "/subscribe", url.Values{"email": {"resident@magadi.ke"}})
	assert.Equal(t, http.StatusOK, w.Code)

	// 重复订阅同样是 200
	w = doPOST(r, "/subscribe", url.Values{"email": {"resident@magadi.ke"}})
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w = doPOST(r, "/subscribe", url.Values{"email": {"not-an-email"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactMessageOverHTTP(t *testing.T) {
	r, db := newTestServer(t)

	w := doPOST(r, "/contact-message", url.Values{
		"full_name": {"Lemayian S."},
		"topic":     {"Roads"},
		"message":   {"The Nguruman road needs grading before the rains"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "received")

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStatsAPI(t *testing.T) {
	r, db := newTestServer(t)

	require.NoError(t, db.Create(&models.Issue{
		Reference: "MGD-2027-260301120000-AA01",
		Area:      "Shompole",
		Category:  models.CategoryWater,
		Urgency:   models.UrgencyNormal,
		Message:   "report",
		Status:    models.StatusResolved,
	}).Error)

	w := doGET(r, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	// 裸 JSON 对象，不包 code/message 信封
	var stats map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats["total_issues"])
	assert.EqualValues(t, 1, stats["resolved_issues"])
	assert.Contains(t, stats, "in_progress_issues")
	assert.Contains(t, stats, "total_updates")
	assert.Contains(t, stats, "total_subscribers")
}

func TestPingAPI(t *testing.T) {
	r, _ := newTestServer(t)

	w := doGET(r, "/api/ping")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestAdminRequiresToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doGET(r, "/admin")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", w.Body.String())

	w = doGET(r, "/admin?token=wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGET(r, "/admin?token="+testAdminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminUpdateIssueStatus(t *testing.T) {
	r, db := newTestServer(t)

	issue := &models.Issue{
		Reference: "MGD-2027-260301120000-BB02",
		Area:      "Oloika",
		Category:  models.CategoryEducation,
		Urgency:   models.UrgencyNormal,
		Message:   "classroom roof leaking",
		Status:    models.StatusReceived,
	}
	require.NoError(t, db.Create(issue).Error)

	// 令牌错误时拒绝且状态不变
	w := doPOST(r, "/admin/issue-status", url.Values{
		"token":  {"wrong"},
		"id":     {fmt.Sprint(issue.ID)},
		"status": {string(models.StatusResolved)},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var unchanged models.Issue
	require.NoError(t, db.First(&unchanged, issue.ID).Error)
	assert.Equal(t, models.StatusReceived, unchanged.Status)

	// 正确令牌时更新并跳回面板
	w = doPOST(r, "/admin/issue-status", url.Values{
		"token":  {testAdminToken},
		"id":     {fmt.Sprint(issue.ID)},
		"status": {string(models.StatusResolved)},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin?token="+testAdminToken, w.Header().Get("Location"))

	var updated models.Issue
	require.NoError(t, db.First(&updated, issue.ID).Error)
	assert.Equal(t, models.StatusResolved, updated.Status)

	// 不存在的问题返回 404
	w = doPOST(r, "/admin/issue-status", url.Values{
		"token":  {testAdminToken},
		"id":     {"99999"},
		"status": {string(models.StatusResolved)},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 非法状态返回 400
	w = doPOST(r, "/admin/issue-status", url.Values{
		"token":  {testAdminToken},
		"id":     {fmt.Sprint(issue.ID)},
		"status": {"Teleported"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminPublishContent(t *testing.T) {
	r, db := newTestServer(t)

	w := doPOST(r, "/admin/new-update", url.Values{
		"token":    {testAdminToken},
		"title":    {"Road Grading Started"},
		"category": {"Development Update"},
		"location": {"Nguruman"},
		"body":     {"Grading of the access road begins this week."},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	var updateCount int64
	require.NoError(t, db.Model(&models.Update{}).Count(&updateCount).Error)
	assert.EqualValues(t, 1, updateCount)

	w = doPOST(r, "/admin/new-event", url.Values{
		"token":      {testAdminToken},
		"title":      {"Market Day Baraza"},
		"venue":      {"Magadi Market"},
		"event_date": {"2026-04-05 10:00"},
		"agenda":     {"Trade licensing and market sanitation"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	var eventCount int64
	require.NoError(t, db.Model(&models.Event{}).Count(&eventCount).Error)
	assert.EqualValues(t, 1, eventCount)

	// 缺少必填字段返回 400
	w = doPOST(r, "/admin/new-update", url.Values{
		"token": {testAdminToken},
		"title": {"Missing Body"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
