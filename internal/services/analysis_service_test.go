package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicScores(t *testing.T) {
	cases := []struct {
		length int
		want   Scores
	}{
		{0, Scores{Hydration: 50, Acne: 40, Texture: 30}},
		{131072, Scores{Hydration: 72, Acne: 64, Texture: 46}}, // 256x128 RGBA, pseudo 72
		{262144, Scores{Hydration: 69, Acne: 48, Texture: 62}}, // 256x256 RGBA, pseudo 44
		{99, Scores{Hydration: 74, Acne: 78, Texture: 77}},
	}
	for _, tc := range cases {
		got := HeuristicScores(tc.length)
		assert.Equal(t, tc.want, got, "length %d", tc.length)
		assert.GreaterOrEqual(t, got.Hydration, 50)
		assert.LessOrEqual(t, got.Hydration, 74)
		assert.GreaterOrEqual(t, got.Acne, 40)
		assert.LessOrEqual(t, got.Acne, 79)
		assert.GreaterOrEqual(t, got.Texture, 30)
		assert.LessOrEqual(t, got.Texture, 79)
	}
}

func TestDecodeImagePayload(t *testing.T) {
	raw, err := DecodeImagePayload("data:image/jpeg;base64,aGVsbG8gd29ybGQh")
	require.NoError(t, err)
	assert.Equal(t, "hello world!", string(raw))

	raw, err = DecodeImagePayload("aGVsbG8gd29ybGQ")
	require.NoError(t, err, "padding is optional")
	assert.Equal(t, "hello world", string(raw))

	_, err = DecodeImagePayload("aGVsbG8gd29y")
	assert.ErrorIs(t, err, ErrImageTooShort, "9 bytes is too short")

	_, err = DecodeImagePayload("!!!not base64!!!")
	assert.ErrorIs(t, err, ErrInvalidBase64)
}

func TestAnalyzeDemoUser(t *testing.T) {
	st := setupSeededStore(t)
	svc := NewAnalysisService(st, nil)

	analysis, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{
		UserID:      models.DemoUserAlias,
		ImageBase64: pngBase64(t, 512, 256),
		Notes:       strPtr("after a week of retinol"),
	})
	require.NoError(t, err)

	demo, err := st.FindUserByEmail(context.Background(), models.DemoUserEmail)
	require.NoError(t, err)
	assert.Equal(t, demo.ID, analysis.UserID)
	assert.NotEqual(t, uuid.Nil, analysis.ID)
	assert.Equal(t, 72, analysis.ScoreHydration)
	assert.Equal(t, 64, analysis.ScoreAcne)
	assert.Equal(t, 46, analysis.ScoreTexture)
	assert.Equal(t, "after a week of retinol", *analysis.Notes)
	assert.Nil(t, analysis.ImageKey)
}

func TestAnalyzeArchivesNormalizedImage(t *testing.T) {
	st := setupSeededStore(t)
	archive := newMemArchive()
	svc := NewAnalysisService(st, archive)

	analysis, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{
		UserID:      models.DemoUserAlias,
		ImageBase64: pngBase64(t, 300, 200),
	})
	require.NoError(t, err)
	require.NotNil(t, analysis.ImageKey)

	wantKey := fmt.Sprintf("analyses/%s/%s.png", analysis.UserID, analysis.ID)
	assert.Equal(t, wantKey, *analysis.ImageKey)
	assert.NotEmpty(t, archive.objects[wantKey])
	assert.Equal(t, "image/png", archive.types[wantKey])
}

func TestAnalyzeArchiveFailureIsNotFatal(t *testing.T) {
	st := setupSeededStore(t)
	archive := newMemArchive()
	archive.err = errors.New("bucket unreachable")
	svc := NewAnalysisService(st, archive)

	analysis, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{
		UserID:      models.DemoUserAlias,
		ImageBase64: pngBase64(t, 64, 64),
	})
	require.NoError(t, err)
	assert.Nil(t, analysis.ImageKey)
}

func TestAnalyzeUnknownUser(t *testing.T) {
	svc := NewAnalysisService(setupTestStore(t), nil)

	_, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{
		UserID:      models.DemoUserAlias,
		ImageBase64: pngBase64(t, 32, 32),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Analyze(context.Background(), dto.AnalyzeRequest{
		UserID:      uuid.NewString(),
		ImageBase64: pngBase64(t, 32, 32),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAnalyzeValidation(t *testing.T) {
	svc := NewAnalysisService(setupSeededStore(t), nil)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, dto.AnalyzeRequest{UserID: "someone", ImageBase64: pngBase64(t, 8, 8)})
	var verrs *dto.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields, "userId")

	_, err = svc.Analyze(ctx, dto.AnalyzeRequest{UserID: models.DemoUserAlias, ImageBase64: "abc"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields, "imageBase64")

	_, err = svc.Analyze(ctx, dto.AnalyzeRequest{UserID: models.DemoUserAlias, ImageBase64: "aGVsbG8gd29y"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields, "imageBase64")
}

func TestAnalyzeUndecodableImageIsServerError(t *testing.T) {
	svc := NewAnalysisService(setupSeededStore(t), nil)

	_, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{
		UserID:      models.DemoUserAlias,
		ImageBase64: "aGVsbG8gd29ybGQhIHRoaXMgaXMgbm90IGFuIGltYWdl",
	})
	require.Error(t, err)
	var verrs *dto.ValidationErrors
	assert.False(t, errors.As(err, &verrs))
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestListAnalyses(t *testing.T) {
	st := setupSeededStore(t)
	svc := NewAnalysisService(st, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Analyze(ctx, dto.AnalyzeRequest{UserID: models.DemoUserAlias, ImageBase64: pngBase64(t, 16, 16)})
		require.NoError(t, err)
	}

	got, err := svc.ListAnalyses(ctx, models.DemoUserAlias)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ListAnalyses(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got, err = NewAnalysisService(setupTestStore(t), nil).ListAnalyses(ctx, models.DemoUserAlias)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnalyzeInvalidBase64IsServerError(t *testing.T) {
	svc := NewAnalysisService(setupSeededStore(t), nil)

	_, err := svc.Analyze(context.Background(), dto.AnalyzeRequest{
		UserID:      models.DemoUserAlias,
		ImageBase64: "@@@@ definitely not base64 @@@@",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBase64)
	var verrs *dto.ValidationErrors
	assert.False(t, errors.As(err, &verrs))
}
