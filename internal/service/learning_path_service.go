package service

import (
	"context"
	"encoding/json"
	"errors"
	"finlit_backend/internal/catalog"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LearningPathService struct {
	Repo     *repository.LearningPathRepository
	UserRepo *repository.UserRepository
	Catalog  *catalog.Catalog
}

func NewLearningPathService(
	repo *repository.LearningPathRepository,
	userRepo *repository.UserRepository,
	cat *catalog.Catalog,
) *LearningPathService {
	return &LearningPathService{
		Repo:     repo,
		UserRepo: userRepo,
		Catalog:  cat,
	}
}

// PathResponse is a persisted path with its content decoded.
type PathResponse struct {
	ID        uint               `json:"id"`
	UserID    uint               `json:"user_id"`
	Topic     string             `json:"topic"`
	PathName  string             `json:"path_name"`
	Path      []catalog.PathStep `json:"path"`
	CreatedAt string             `json:"created_at"`
}

func PathName(topic string) string {
	return "Custom Path for " + topic
}

func (s *LearningPathService) Topics() []string {
	return s.Catalog.Topics()
}

// Generate snapshots the catalog content of goal into a new path owned by userID.
func (s *LearningPathService) Generate(ctx context.Context, userID uint, goal string) (*PathResponse, error) {
	goal = strings.TrimSpace(goal)
	steps, err := s.Catalog.Generate(goal)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, util.ErrNotFound)
		}
		return nil, err
	}

	raw, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("encode path: %w", err)
	}

	path := &model.LearningPath{
		UserID:   userID,
		Topic:    goal,
		PathName: PathName(goal),
		PathJSON: datatypes.JSON(raw),
	}
	if err := s.Repo.Create(ctx, path); err != nil {
		return nil, err
	}
	return toPathResponse(path, steps), nil
}

func (s *LearningPathService) MyPaths(ctx context.Context, userID uint) ([]PathResponse, error) {
	paths, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]PathResponse, 0, len(paths))
	for i := range paths {
		var steps []catalog.PathStep
		if len(paths[i].PathJSON) > 0 {
			if err := json.Unmarshal(paths[i].PathJSON, &steps); err != nil {
				return nil, fmt.Errorf("decode path %d: %w", paths[i].ID, err)
			}
		}
		out = append(out, *toPathResponse(&paths[i], steps))
	}
	return out, nil
}

func toPathResponse(p *model.LearningPath, steps []catalog.PathStep) *PathResponse {
	if steps == nil {
		steps = []catalog.PathStep{}
	}
	return &PathResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Topic:     p.Topic,
		PathName:  p.PathName,
		Path:      steps,
		CreatedAt: p.CreatedAt.Format(util.TimeFormat),
	}
}
