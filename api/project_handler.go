package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newProjectHandler(projects ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Description Projects ordered by display_order, then creation time
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} ErrorResponse
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{id} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body models.ProjectPatch true "Project data"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid project data"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ProjectPatch
		if err := decodeJSON(w, r, "project", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := models.NewProject(patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projects.Add(r.Context(), project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		adminID, _ := ctxGetAdminID(r.Context())
		h.logger.Info().Str("adminID", adminID).Str("projectID", project.ID.String()).Msg("Project created")
		h.responder.WriteJSON(w, project)
	}
}

// updateProject merges the supplied fields into an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" format(uuid)
// @Param project body models.ProjectPatch true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid project data"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{id} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ProjectPatch
		if err := decodeJSON(w, r, "project", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.Update(r.Context(), projectID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Router /api/projects/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projects.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, messageResponse{Message: "Project deleted"})
	}
}
