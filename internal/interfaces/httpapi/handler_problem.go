package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

func parseProblemState(r *http.Request) (problem.State, error) {
	state, err := problem.ParseState(queryValue(r, "state"))
	if err != nil {
		return problem.StateAll, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return state, nil
}

func (h *Handler) GetProblem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProblem")
	defer span.End()

	id := pathValue(r, "id")
	item, err := h.problems.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get problem failed", err, "problem_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, problemToDTO(item))
}

func (h *Handler) ListProblems(w http.ResponseWriter, r *http.Request) {
	state, err := parseProblemState(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.listProblems(w, r, state)
}

func (h *Handler) ListSolvedProblems(w http.ResponseWriter, r *http.Request) {
	h.listProblems(w, r, problem.StateSolved)
}

func (h *Handler) ListUnsolvedProblems(w http.ResponseWriter, r *http.Request) {
	h.listProblems(w, r, problem.StateUnsolved)
}

func (h *Handler) listProblems(w http.ResponseWriter, r *http.Request, state problem.State) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProblems")
	defer span.End()

	items, err := h.problems.List(ctx, state)
	if err != nil {
		h.fail(ctx, w, "list problems failed", err, "state", state)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, problemToDTO))
}

func (h *Handler) CountProblems(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountProblems")
	defer span.End()

	state, err := parseProblemState(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	n, err := h.problems.Count(ctx, state)
	if err != nil {
		h.fail(ctx, w, "count problems failed", err, "state", state)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: n})
}

func (h *Handler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateProblem")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req problemRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.problems.Create(ctx, principal, usecase.ProblemInput{Title: req.Title, Description: req.Description})
	if err != nil {
		h.fail(ctx, w, "create problem failed", err, "user_id", principal.UserID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, problemToDTO(item))
}

func (h *Handler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateProblem")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req problemRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.problems.Update(ctx, principal, id, usecase.ProblemInput{Title: req.Title, Description: req.Description})
	if err != nil {
		h.fail(ctx, w, "update problem failed", err, "problem_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, problemToDTO(item))
}

func (h *Handler) SolveProblem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SolveProblem")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	item, err := h.problems.Solve(ctx, principal, id)
	if err != nil {
		h.fail(ctx, w, "solve problem failed", err, "problem_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, problemToDTO(item))
}

func (h *Handler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteProblem")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := pathValue(r, "id")
	if err := h.problems.Delete(ctx, principal, id); err != nil {
		h.fail(ctx, w, "delete problem failed", err, "problem_id", id)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ExportProblems(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportProblems")
	defer span.End()

	state, err := parseProblemState(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.problems.List(ctx, state)
	if err != nil {
		h.fail(ctx, w, "export problems failed", err)
		return
	}
	h.writeExport(ctx, w, r, problemsTable(items))
}
