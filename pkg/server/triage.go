package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"straysense/pkg/store"
	"straysense/pkg/triage"
)

type triageReq struct {
	VisualSignals   triage.VisualSignals     `json:"visualSignals"`
	BehaviorSignals triage.BehavioralSignals `json:"behaviorSignals"`
	Description     string                   `json:"description"`

	AnimalName string `json:"animalName,omitempty"`
	Species    string `json:"species,omitempty"`
	Save       bool   `json:"save,omitempty"`
}

type triageResp struct {
	triage.TriageReport
	RecordID string `json:"recordId,omitempty"`
}

// POST /api/triage
func (s *Server) handlePostTriage(c echo.Context) error {
	var req triageReq
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid JSON in /api/triage", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	report := triage.GenerateReport(req.VisualSignals, req.BehaviorSignals, req.Description)
	resp := triageResp{TriageReport: report}

	if req.Save && s.Store != nil {
		rec := store.Record{
			UserID:       userID(c),
			AnimalName:   strings.TrimSpace(req.AnimalName),
			Species:      strings.TrimSpace(req.Species),
			Description:  req.Description,
			Urgency:      report.Urgency,
			UrgencyScore: report.UrgencyScore,
			ConcernFlags: report.ConcernFlags.Slice(),
			Actions:      report.Actions,
		}
		id, err := s.Store.Save(c.Request().Context(), &rec)
		if err != nil {
			log.Error("failed to save triage record", "error", err)
		} else {
			resp.RecordID = id
			if s.Publisher != nil {
				if err := s.Publisher.Publish(c.Request().Context(), id, rec); err != nil {
					log.Warn("failed to publish report event", "id", id, "error", err)
				}
			}
		}
	}

	log.Info("triage report generated",
		"urgency", report.Urgency,
		"score", report.UrgencyScore,
		"flags", report.ConcernFlags.Len(),
		"saved", resp.RecordID != "",
	)
	return c.JSON(http.StatusOK, resp)
}
