package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/imaging"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/storage"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
	"github.com/google/uuid"
)

// minImageBytes is the smallest decoded payload accepted as an image.
const minImageBytes = 10

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-zA-Z]+;base64,`)

var (
	ErrInvalidBase64 = errors.New("image payload is not valid base64")
	ErrImageTooShort = errors.New("image payload too short")
)

// Scores are the placeholder heuristic outputs. They are derived from the length of the
// normalized pixel buffer only and carry no diagnostic meaning.
type Scores struct {
	Hydration int
	Acne      int
	Texture   int
}

// HeuristicScores applies the fixed placeholder formulas to a buffer length.
func HeuristicScores(bufferLen int) Scores {
	pseudo := bufferLen % 100
	return Scores{
		Hydration: 50 + pseudo%25,
		Acne:      40 + (pseudo*2)%40,
		Texture:   30 + (pseudo*3)%50,
	}
}

type AnalysisService struct {
	store   *store.Store
	archive storage.ObjectStore
}

// NewAnalysisService builds the analyzer. archive may be nil, in which case normalized
// images are not kept.
func NewAnalysisService(st *store.Store, archive storage.ObjectStore) *AnalysisService {
	return &AnalysisService{store: st, archive: archive}
}

// Analyze scores an uploaded photo and records the result for the referenced user.
func (s *AnalysisService) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*models.SkinAnalysis, error) {
	if verrs := dto.Validate(&req); verrs != nil {
		return nil, verrs
	}

	raw, err := DecodeImagePayload(req.ImageBase64)
	if errors.Is(err, ErrImageTooShort) {
		verrs := &dto.ValidationErrors{}
		verrs.AddField("imageBase64", fmt.Sprintf("Image must be at least %d bytes", minImageBytes))
		return nil, verrs
	}
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}

	normalized, err := imaging.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize image: %w", err)
	}
	scores := HeuristicScores(len(normalized.Raw()))

	user, err := s.store.ResolveUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	analysis := &models.SkinAnalysis{
		ID:             uuid.New(),
		UserID:         user.ID,
		Notes:          req.Notes,
		ScoreHydration: scores.Hydration,
		ScoreAcne:      scores.Acne,
		ScoreTexture:   scores.Texture,
	}
	if key, ok := s.archiveImage(ctx, analysis, normalized); ok {
		analysis.ImageKey = &key
	}

	if err := s.store.CreateSkinAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// ListAnalyses returns the referenced user's analyses, newest first. An unknown
// reference yields an empty list.
func (s *AnalysisService) ListAnalyses(ctx context.Context, userRef string) ([]models.SkinAnalysis, error) {
	user, err := s.store.ResolveUser(ctx, userRef)
	if errors.Is(err, store.ErrNotFound) {
		return []models.SkinAnalysis{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return s.store.ListSkinAnalyses(ctx, user.ID)
}

func (s *AnalysisService) archiveImage(ctx context.Context, a *models.SkinAnalysis, n *imaging.Normalized) (string, bool) {
	if s.archive == nil {
		return "", false
	}
	data, err := n.PNG()
	if err != nil {
		slog.Warn("analysis image encode failed", "analysis_id", a.ID.String(), "error", err)
		return "", false
	}
	key := fmt.Sprintf("analyses/%s/%s.png", a.UserID, a.ID)
	if err := s.archive.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "image/png"); err != nil {
		slog.Warn("analysis image archive failed", "analysis_id", a.ID.String(), "key", key, "error", err)
		return "", false
	}
	return key, true
}

// DecodeImagePayload strips an optional data URI prefix and decodes the base64 body.
// Padding is optional and the URL-safe alphabet is accepted. Only ErrImageTooShort
// is a client error; a body that is not base64 fails like an undecodable image.
func DecodeImagePayload(payload string) ([]byte, error) {
	body := dataURIPrefix.ReplaceAllString(payload, "")
	body = strings.Join(strings.Fields(body), "")
	body = strings.TrimRight(body, "=")

	raw, err := base64.RawStdEncoding.DecodeString(body)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(body)
		if err != nil {
			return nil, ErrInvalidBase64
		}
	}
	if len(raw) < minImageBytes {
		return nil, fmt.Errorf("%d bytes: %w", len(raw), ErrImageTooShort)
	}
	return raw, nil
}
