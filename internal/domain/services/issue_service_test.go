package services

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 为每个测试创建独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 共享缓存内存库只允许单连接，避免表在连接间不可见
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
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		CandidateName: "Abraham Senteu",
		AdminToken:    "test-token",
	}
}

var referencePattern = regexp.MustCompile(`^MGD-2027-\d{12}-[0-9A-F]{4}$`)

func TestSubmitIssueAssignsReference(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db, newTestConfig())

	issue, err := svc.SubmitIssue(&SubmitIssueRequest{
		FullName: "Naserian K.",
		Phone:    "0722000000",
		Area:     "Shompole",
		Category: "Water",
		Message:  "Borehole pump has been down for two weeks",
	})
	require.NoError(t, err)

	assert.Regexp(t, referencePattern, issue.Reference)
	assert.Equal(t, models.StatusReceived, issue.Status)
	assert.Equal(t, models.UrgencyNormal, issue.Urgency)
	assert.NotZero(t, issue.ID)
}

func TestSubmitIssueValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db, newTestConfig())

	cases := []struct {
		name    string
		req     SubmitIssueRequest
		wantErr error
	}{
		{
			name:    "missing area",
			req:     SubmitIssueRequest{Category: "Water", Message: "dry taps"},
			wantErr: ErrIssueValidation,
		},
		{
			name:    "missing message",
			req:     SubmitIssueRequest{Area: "Oloika", Category: "Water"},
			wantErr: ErrIssueValidation,
		},
		{
			name:    "whitespace only message",
			req:     SubmitIssueRequest{Area: "Oloika", Category: "Water", Message: "   "},
			wantErr: ErrIssueValidation,
		},
		{
			name:    "unknown category",
			req:     SubmitIssueRequest{Area: "Oloika", Category: "Aliens", Message: "strange lights"},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "unknown urgency",
			req:     SubmitIssueRequest{Area: "Oloika", Category: "Water", Urgency: "Apocalyptic", Message: "dry taps"},
			wantErr: ErrInvalidUrgency,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitIssue(&tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// 校验失败不得留下任何记录
	var count int64
	require.NoError(t, db.Model(&models.Issue{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitIssueReferencesUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db, newTestConfig())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		issue, err := svc.SubmitIssue(&SubmitIssueRequest{
			Area:     "Nguruman",
			Category: "Roads/Transport",
			Message:  fmt.Sprintf("pothole report %d", i),
		})
		require.NoError(t, err)
		assert.False(t, seen[issue.Reference], "duplicate reference %s", issue.Reference)
		seen[issue.Reference] = true
	}
}

func TestSubmitIssueConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db, newTestConfig())

	const workers = 10
	var wg sync.WaitGroup
	refs := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			issue, err := svc.SubmitIssue(&SubmitIssueRequest{
				Area:     "Olkiramatian",
				Category: "Health",
				Message:  fmt.Sprintf("dispensary stockout %d", n),
			})
			assert.NoError(t, err)
			if issue != nil {
				refs <- issue.Reference
			}
		}(i)
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]bool)
	for ref := range refs {
		assert.False(t, seen[ref])
		seen[ref] = true
	}
	assert.Len(t, seen, workers)
}

func TestTrackIssue(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db, newTestConfig())

	submitted, err := svc.SubmitIssue(&SubmitIssueRequest{
		Area:     "Magadi Town",
		Category: "Security",
		Urgency:  "High",
		Message:  "street lights off on market road",
	})
	require.NoError(t, err)

	tracked, err := svc.TrackIssue(submitted.Reference)
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, tracked.ID)
	assert.Equal(t, models.StatusReceived, tracked.Status)
	assert.Equal(t, models.UrgencyHigh, tracked.Urgency)

	_, err = svc.TrackIssue("MGD-2027-000000000000-FFFF")
	assert.ErrorIs(t, err, ErrIssueNotFound)
}

func TestUpdateIssueStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db, newTestConfig())

	issue, err := svc.SubmitIssue(&SubmitIssueRequest{
		Area:     "Oloika",
		Category: "Education",
		Message:  "classroom roof leaking",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateIssueStatus(issue.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	// 编号在状态流转中保持不变
	assert.Equal(t, issue.Reference, updated.Reference)

	// 设置相同状态是幂等的成功
	again, err := svc.UpdateIssueStatus(issue.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, again.Status)

	_, err = svc.UpdateIssueStatus(issue.ID, "Teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateIssueStatus(99999, models.StatusResolved)
	assert.ErrorIs(t, err, ErrIssueNotFound)
}

func TestGetRecentIssuesOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db, newTestConfig())

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitIssue(&SubmitIssueRequest{
			Area:     "Shompole",
			Category: "Other",
			Message:  fmt.Sprintf("report %d", i),
		})
		require.NoError(t, err)
	}

	issues, err := svc.GetRecentIssues(2)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}
