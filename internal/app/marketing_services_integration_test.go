//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/marketing"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_ActiveRespectsWindow(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	now := time.Now().UTC()
	past, soon, later := now.Add(-48*time.Hour), now.Add(24*time.Hour), now.Add(72*time.Hour)
	expired := now.Add(-time.Hour)

	live, err := ts.ContentService.Create(ctx, &marketing.Input{Kind: marketing.KindBanner, Title: "Monsoon offer", Published: true, StartsAt: &past, EndsAt: &later})
	require.NoError(t, err)
	_, err = ts.ContentService.Create(ctx, &marketing.Input{Kind: marketing.KindBanner, Title: "Upcoming offer", Published: true, StartsAt: &soon})
	require.NoError(t, err)
	_, err = ts.ContentService.Create(ctx, &marketing.Input{Kind: marketing.KindBanner, Title: "Old offer", Published: true, StartsAt: &past, EndsAt: &expired})
	require.NoError(t, err)
	draft, err := ts.ContentService.Create(ctx, &marketing.Input{Kind: marketing.KindBanner, Title: "Draft offer", Position: 1})
	require.NoError(t, err)
	_, err = ts.ContentService.Create(ctx, &marketing.Input{Kind: marketing.KindBlog, Title: "Service tips", Published: true})
	require.NoError(t, err)

	active, err := ts.ContentService.Active(ctx, marketing.KindBanner)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, live.ID, active[0].ID)

	_, err = ts.ContentService.SetPublished(ctx, draft.ID, &marketing.PublishInput{Published: true})
	require.NoError(t, err)
	active, err = ts.ContentService.Active(ctx, marketing.KindBanner)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := ts.ContentService.Active(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = ts.ContentService.Active(ctx, "POPUP")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestContentService_CRUD(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	start := time.Now().Add(time.Hour)
	end := start.Add(-2 * time.Hour)
	_, err := ts.ContentService.Create(ctx, &marketing.Input{Kind: marketing.KindPromotion, Title: "Bad window", StartsAt: &start, EndsAt: &end})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	content, err := ts.ContentService.Create(ctx, &marketing.Input{Kind: marketing.KindTestimonial, Title: "Happy customer", Body: "Quick and clean work."})
	require.NoError(t, err)

	updated, err := ts.ContentService.Update(ctx, content.ID, &marketing.Input{Kind: marketing.KindTestimonial, Title: "Very happy customer", LinkURL: "https://example.com/reviews"})
	require.NoError(t, err)
	assert.Equal(t, "Very happy customer", updated.Title)

	form := testutil.CreateForm(t, nil, testutil.TestFile{Name: "face.png", ContentType: "image/png", Content: pngHeader})
	withImage, err := ts.ContentService.UploadImage(ctx, content.ID, form.File["files"][0])
	require.NoError(t, err)
	assert.Equal(t, "marketing/"+content.ID+"/image.png", withImage.ImageKey)

	data, contentType, err := ts.ContentService.Image(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, pngHeader, data)

	_, total, err := ts.ContentService.List(ctx, &marketing.Query{Kind: marketing.KindTestimonial})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	require.NoError(t, ts.ContentService.DeleteByID(ctx, content.ID))
	_, err = ts.ContentService.GetByID(ctx, content.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
