package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golboard/pkg/core"
	"golboard/pkg/life"
)

type boardResponse struct {
	ID         int64   `json:"id"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Generation int     `json:"generation"`
	Population int     `json:"population"`
	Cells      [][]int `json:"cells"`
}

func snapshotResponse(s life.Snapshot) boardResponse {
	resp := boardResponse{
		ID:         s.ID,
		Width:      s.Width,
		Height:     s.Height,
		Generation: s.Generation,
		Cells:      make([][]int, s.Height),
	}
	for y, cells := range s.Rows() {
		row := make([]int, len(cells))
		for x, v := range cells {
			row[x] = int(v)
			resp.Population += row[x]
		}
		resp.Cells[y] = row
	}
	return resp
}

func boardJSON(b *life.Board) boardResponse { return snapshotResponse(b.Snapshot()) }

type statesResponse struct {
	ID          int64           `json:"id"`
	Generations int             `json:"generations"`
	States      []boardResponse `json:"states"`
}

type finalResponse struct {
	ID          int64         `json:"id"`
	Outcome     life.Outcome  `json:"outcome"`
	Reached     bool          `json:"reached"`
	Generations int           `json:"generations"`
	Period      int           `json:"period,omitempty"`
	FirstSeen   int           `json:"first_seen,omitempty"`
	MaxAttempts int           `json:"max_attempts"`
	Board       boardResponse `json:"board"`
}

type uploadRequest struct {
	Cells [][]int `json:"cells"`
}

func (u uploadRequest) rows() ([][]uint8, error) {
	rows := make([][]uint8, len(u.Cells))
	for y, in := range u.Cells {
		row := make([]uint8, len(in))
		for x, v := range in {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", life.ErrInvalidCell, v, x, y)
			}
			row[x] = uint8(v)
		}
		rows[y] = row
	}
	return rows, nil
}

// createBoard creates and seeds a board: POST /boards/{id}?x=&y=&seed=.
func (s *Server) createBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	width, err := parseDim(r, "x", s.cfg.Width)
	if err != nil {
		s.fail(w, err)
		return
	}
	height, err := parseDim(r, "y", s.cfg.Height)
	if err != nil {
		s.fail(w, err)
		return
	}
	seed := s.seeds()
	if v := r.URL.Query().Get("seed"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			s.fail(w, fmt.Errorf("%w: seed must be an integer", errBadRequest))
			return
		}
	}

	b, err := life.NewBoard(id, width, height)
	if err != nil {
		s.fail(w, err)
		return
	}
	life.Seed(b, core.NewRNG(seed))
	if _, err := s.store.Create(r.Context(), b); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, boardJSON(b))
}

// uploadBoard replaces the current generation of a stored board with an
// uploaded state of the same shape: PUT /boards/{id}.
func (s *Server) uploadBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	rows, err := req.rows()
	if err != nil {
		s.fail(w, err)
		return
	}
	b, err := s.store.Update(r.Context(), id, func(b *life.Board) error {
		return b.Load(rows)
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardJSON(b))
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	b, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardJSON(b))
}

// nextState advances a board one generation and persists it.
func (s *Server) nextState(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	b, err := s.store.Update(r.Context(), id, func(b *life.Board) error {
		life.Step(b)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardJSON(b))
}

// states advances a board ?generations=N steps and returns every generation.
// Negative counts are accepted and leave the board unchanged.
func (s *Server) states(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	generations, err := strconv.Atoi(r.URL.Query().Get("generations"))
	if err != nil {
		s.fail(w, fmt.Errorf("%w: generations must be an integer", life.ErrInvalidGenerationCount))
		return
	}

	var trajectory []life.Snapshot
	if _, err := s.store.Update(r.Context(), id, func(b *life.Board) error {
		trajectory = life.Advance(b, generations)
		return nil
	}); err != nil {
		s.fail(w, err)
		return
	}
	resp := statesResponse{ID: id, Generations: len(trajectory), States: make([]boardResponse, len(trajectory))}
	for i, snap := range trajectory {
		resp.States[i] = snapshotResponse(snap)
	}
	writeJSON(w, http.StatusOK, resp)
}

// finalState searches for a fixed point or cycle within the configured
// attempts. Boards that do not settle get 422 along with the search result.
func (s *Server) finalState(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var res life.Result
	b, err := s.store.Update(r.Context(), id, func(b *life.Board) error {
		res = life.Stabilize(b, s.cfg.MaxAttempts)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	status := http.StatusOK
	if !res.Reached() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, finalResponse{
		ID:          id,
		Outcome:     res.Outcome,
		Reached:     res.Reached(),
		Generations: res.Generations,
		Period:      res.Period,
		FirstSeen:   res.FirstSeen,
		MaxAttempts: s.cfg.MaxAttempts,
		Board:       boardJSON(b),
	})
}
