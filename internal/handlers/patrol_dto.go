package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/guard-patrol/internal/patrol"
)

type AnalyzeOptionsDTO struct {
	Workers *int `schema:"workers"`
	Render  bool `schema:"render"`
}

func ParseAnalyzeOptionsDTO(src map[string][]string) (AnalyzeOptionsDTO, error) {
	var dto AnalyzeOptionsDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Workers != nil && *dto.Workers < 0 {
		return dto, fmt.Errorf("workers must not be negative, got %d", *dto.Workers)
	}
	return dto, nil
}

type ReportDTO struct {
	Visited        int               `json:"visited"`
	LoopPlacements int               `json:"loop_placements"`
	Placements     []patrol.Position `json:"placements"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Start          patrol.Position   `json:"start"`
	Facing         string            `json:"facing"`
	Render         string            `json:"render,omitempty"`
}

func NewReportDTO(g *patrol.Grid, start patrol.State, r *patrol.Report) *ReportDTO {
	return &ReportDTO{
		Visited:        r.Visited,
		LoopPlacements: r.LoopPlacements,
		Placements:     r.Placements,
		Width:          g.Width(),
		Height:         g.Height(),
		Start:          start.Position,
		Facing:         start.Facing.String(),
	}
}
