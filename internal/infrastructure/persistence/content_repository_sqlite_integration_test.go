//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/domain/trust"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentSqliteRepository_ListActive(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	live := marketing.NewContent(&marketing.Input{Kind: marketing.KindBanner, Title: "Monsoon sale", Published: true, Position: 2})
	first := marketing.NewContent(&marketing.Input{Kind: marketing.KindBanner, Title: "Diwali offer", Published: true, Position: 1, StartsAt: &past, EndsAt: &future})
	expired := marketing.NewContent(&marketing.Input{Kind: marketing.KindBanner, Title: "Old offer", Published: true, EndsAt: &past})
	draft := marketing.NewContent(&marketing.Input{Kind: marketing.KindBanner, Title: "Draft banner"})
	blog := marketing.NewContent(&marketing.Input{Kind: marketing.KindBlog, Title: "Care tips", Published: true})

	for _, c := range []*marketing.Content{live, first, expired, draft, blog} {
		require.NoError(t, ctx.ContentRepo.Create(bg, c))
	}

	active, err := ctx.ContentRepo.ListActive(bg, marketing.KindBanner, now)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, live.ID, active[1].ID)

	published := false
	list, total, err := ctx.ContentRepo.List(bg, &marketing.Query{Published: &published})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, draft.ID, list[0].ID)
}

func TestContentSqliteRepository_Create_InvalidWindow(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	now := time.Now().UTC()
	earlier := now.Add(-time.Hour)

	c := marketing.NewContent(&marketing.Input{Kind: marketing.KindPromotion, Title: "Bad window", StartsAt: &now, EndsAt: &earlier})
	err := ctx.ContentRepo.Create(context.Background(), c)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestDocumentSqliteRepository_ListAndDeleteByOwner(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	ownerID := uuid.NewString()
	userID := uuid.NewString()
	aadhaar := documents.NewDocumentMeta(partners.TypeDealer, ownerID, userID, documents.KindAadhaar, "aadhaar.pdf", "application/pdf", 2048)
	photo := documents.NewDocumentMeta(partners.TypeDealer, ownerID, userID, documents.KindPhoto, "shop.png", "image/png", 4096)
	other := documents.NewDocumentMeta(partners.TypeTechnician, uuid.NewString(), uuid.NewString(), documents.KindOther, "id.jpg", "image/jpeg", 100)
	for _, d := range []*documents.DocumentMeta{aadhaar, photo, other} {
		require.NoError(t, ctx.DocumentRepo.Create(bg, d))
	}

	docs, err := ctx.DocumentRepo.ListByOwner(bg, partners.TypeDealer, ownerID)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	fetched, err := ctx.DocumentRepo.GetByID(bg, aadhaar.ID)
	require.NoError(t, err)
	assert.Equal(t, aadhaar.StorageKey, fetched.StorageKey)

	require.NoError(t, ctx.DocumentRepo.DeleteByOwner(bg, partners.TypeDealer, ownerID))
	docs, err = ctx.DocumentRepo.ListByOwner(bg, partners.TypeDealer, ownerID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestTrustHistorySqliteRepository_AppendAndList(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	subjectID := uuid.NewString()
	actorID := uuid.NewString()
	require.NoError(t, ctx.TrustRepo.Append(bg, trust.NewHistory(partners.TypeDealer, subjectID, 50, 53, "good reviews", actorID, trust.SourceManual)))
	require.NoError(t, ctx.TrustRepo.Append(bg, trust.NewHistory(partners.TypeDealer, subjectID, 53, 48, "late jobs", actorID, trust.SourceManual)))
	require.NoError(t, ctx.TrustRepo.Append(bg, trust.NewHistory(partners.TypeTechnician, subjectID, 50, 52, "other subject", actorID, trust.SourceManual)))

	entries, total, err := ctx.TrustRepo.List(bg, &trust.HistoryQuery{SubjectType: partners.TypeDealer, SubjectID: subjectID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)
}

func TestAuditReportSqliteRepository_CreateAndList(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	input := &audits.RunInput{SubjectType: partners.TypeTechnician, SubjectID: uuid.NewString(), Question: "Any repeated complaints?"}
	report := audits.NewReport(input, "RISK: HIGH\nThree upheld complaints in a month.", "gemini-2.0-flash", uuid.NewString())
	require.NoError(t, ctx.AuditRepo.Create(bg, report))

	fetched, err := ctx.AuditRepo.GetByID(bg, report.ID)
	require.NoError(t, err)
	assert.Equal(t, audits.RiskHigh, fetched.RiskLevel)

	list, total, err := ctx.AuditRepo.List(bg, &audits.Query{RiskLevel: audits.RiskHigh})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, report.ID, list[0].ID)
}
