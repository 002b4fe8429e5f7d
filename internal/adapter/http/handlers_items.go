package adapthttp

import (
	"errors"
	"net/http"
	"strings"

	"consumption/internal/domain"
)

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items := s.tracker.Items(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		s.handleAddItem(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
		Name     string `json:"name"`
		Calories int64  `json:"calories"`
		Sugary   bool   `json:"sugary"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(body.Name) == "" {
		writeError(w, http.StatusBadRequest, errors.New("name must not be empty"))
		return
	}
	if body.Calories < 0 {
		writeError(w, http.StatusBadRequest, errors.New("calories must not be negative"))
		return
	}

	var item domain.Consumable
	switch domain.Category(body.Category) {
	case domain.CategoryFood:
		if body.Sugary {
			writeError(w, http.StatusBadRequest, errors.New("sugary applies to drinks only"))
			return
		}
		item = domain.NewFood(body.Name, body.Calories)
	case domain.CategoryDrink:
		item = domain.NewDrink(body.Name, body.Calories, body.Sugary)
	default:
		writeError(w, http.StatusBadRequest, errors.New(`category must be "food" or "drink"`))
		return
	}

	s.tracker.Add(r.Context(), item)
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

func (s *Server) handleItemsList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"list": s.tracker.ListItems(r.Context())})
}

func (s *Server) handleDeleteAt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Index int `json:"index"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// A bad index is a log-only no-op, not an HTTP error.
	s.tracker.DeleteAt(r.Context(), body.Index)
	writeJSON(w, http.StatusOK, map[string]any{"items": s.tracker.Items(r.Context())})
}

func (s *Server) handleDeleteByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.tracker.DeleteByName(r.Context(), body.Name)
	writeJSON(w, http.StatusOK, map[string]any{"items": s.tracker.Items(r.Context())})
}
