package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tieubaoca/csbot-be/repository"
	"github.com/tieubaoca/csbot-be/types"
)

// KnowledgeService manages the knowledge base: ingestion from URLs, manual
// entries and local files, plus listing and deletion.
type KnowledgeService struct {
	repo    repository.KnowledgeRepo
	scraper *ScraperService
}

func NewKnowledgeService(repo repository.KnowledgeRepo, scraper *ScraperService) *KnowledgeService {
	return &KnowledgeService{
		repo:    repo,
		scraper: scraper,
	}
}

// IngestURL fetches the page at url and stores its extracted text. Retrieval
// failures come back as *FetchError so the caller can report them as a bad
// request rather than a server fault.
func (s *KnowledgeService) IngestURL(ctx context.Context, url string) (*types.KnowledgeEntry, error) {
	title, content, err := s.scraper.FetchPage(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	sourceURL := url
	entry := &types.KnowledgeEntry{
		Title:      title,
		Content:    content,
		SourceURL:  &sourceURL,
		SourceType: types.SourceTypeURL,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("store knowledge entry: %w", err)
	}
	return entry, nil
}

func (s *KnowledgeService) IngestManual(ctx context.Context, title, content string) (*types.KnowledgeEntry, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	entry := &types.KnowledgeEntry{
		Title:      title,
		Content:    content,
		SourceType: types.SourceTypeManual,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("store knowledge entry: %w", err)
	}
	return entry, nil
}

// IngestFile loads a local text file as an uploaded knowledge entry. The
// title is the file name without extension. Used by the ingest command.
func (s *KnowledgeService) IngestFile(ctx context.Context, path string) (*types.KnowledgeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrContentRequired
	}

	name := filepath.Base(path)
	title := strings.TrimSuffix(name, filepath.Ext(name))

	entry := &types.KnowledgeEntry{
		Title:      title,
		Content:    string(data),
		SourceType: types.SourceTypeUpload,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("store knowledge entry: %w", err)
	}
	return entry, nil
}

func (s *KnowledgeService) List(ctx context.Context) ([]types.KnowledgeEntry, error) {
	return s.repo.ListAll(ctx)
}

func (s *KnowledgeService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
