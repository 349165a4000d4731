package rest

import (
	"time"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

type categoryResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   *string            `json:"description"`
	ParentID      *string            `json:"parent_id"`
	CreatedAt     time.Time          `json:"created_at"`
	Subcategories []categoryResponse `json:"subcategories"`
}

type ideaResponse struct {
	ID              string              `json:"id"`
	EntryID         string              `json:"entry_id"`
	Title           string              `json:"title"`
	IdeaDescription string              `json:"idea_description"`
	AIPrompt        *string             `json:"ai_prompt"`
	OutputTypes     []domain.OutputType `json:"output_types"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
}

type entryResponse struct {
	ID               string            `json:"id"`
	RawContent       string            `json:"raw_content"`
	ProcessedContent string            `json:"processed_content"`
	ContentType      string            `json:"content_type"`
	FilePath         *string           `json:"file_path"`
	Category         *categoryResponse `json:"category"`
	Subcategory      *categoryResponse `json:"subcategory"`
	Source           string            `json:"source"`
	Metadata         domain.Metadata   `json:"entry_metadata"`
	CreatedAt        time.Time         `json:"created_at"`
	ContentIdeas     []ideaResponse    `json:"content_ideas"`
}

type projectResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Category    *categoryResponse `json:"category"`
	Tasks       []string          `json:"tasks"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	resp := categoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Description:   c.Description,
		CreatedAt:     c.CreatedAt,
		Subcategories: make([]categoryResponse, 0, len(c.Subcategories)),
	}
	if c.ParentID != nil {
		p := c.ParentID.String()
		resp.ParentID = &p
	}
	for _, sub := range c.Subcategories {
		resp.Subcategories = append(resp.Subcategories, toCategoryResponse(sub))
	}
	return resp
}

func toCategoryPtr(c *domain.Category) *categoryResponse {
	if c == nil {
		return nil
	}
	resp := toCategoryResponse(*c)
	return &resp
}

func toCategoryList(list []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toIdeaResponse(i domain.ContentIdea) ideaResponse {
	types := i.OutputTypes
	if types == nil {
		types = []domain.OutputType{}
	}
	return ideaResponse{
		ID:              i.ID.String(),
		EntryID:         i.EntryID.String(),
		Title:           i.Title,
		IdeaDescription: i.IdeaDescription,
		AIPrompt:        i.AIPrompt,
		OutputTypes:     types,
		Status:          i.Status,
		CreatedAt:       i.CreatedAt,
	}
}

func toIdeaList(list []domain.ContentIdea) []ideaResponse {
	out := make([]ideaResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toIdeaResponse(i))
	}
	return out
}

func toEntryResponse(e domain.Entry) entryResponse {
	meta := e.Metadata
	if meta == nil {
		meta = domain.Metadata{}
	}
	return entryResponse{
		ID:               e.ID.String(),
		RawContent:       e.RawContent,
		ProcessedContent: e.ProcessedContent,
		ContentType:      e.ContentType.String(),
		FilePath:         e.FilePath,
		Category:         toCategoryPtr(e.Category),
		Subcategory:      toCategoryPtr(e.Subcategory),
		Source:           e.Source.String(),
		Metadata:         meta,
		CreatedAt:        e.CreatedAt,
		ContentIdeas:     toIdeaList(e.Ideas),
	}
}

func toProjectResponse(p domain.Project) projectResponse {
	tasks := p.Tasks
	if tasks == nil {
		tasks = []string{}
	}
	return projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    toCategoryPtr(p.Category),
		Tasks:       tasks,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}
