package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ism7788/math-practice/internal/catalog"
)

// handleSkills lists the catalog, optionally filtered by ?grade=N.
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	skills := catalog.Skills()
	if g := r.URL.Query().Get("grade"); g != "" {
		grade, err := strconv.Atoi(g)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "grade must be an integer")
			return
		}
		skills = catalog.ByGrade(grade)
	}
	if skills == nil {
		skills = []catalog.Skill{}
	}
	s.respond(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleBank generates a fresh bank for the skill. Every call produces
// new items; banks are never cached or persisted.
func (s *Server) handleBank(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	skill, ok := catalog.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "unknown skill")
		return
	}

	bank, err := s.banks.BankFor(skill.ID)
	if err != nil {
		s.log.Error("build bank", zap.String("skill", skill.ID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"skill": skill,
		"items": bank,
	})
}
