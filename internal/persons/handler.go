package persons

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docproc-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the persons repository.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches person routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/persons/:id", h.get)
}

type personResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	SSN            string `json:"ssn,omitempty"`
	DriversLicense string `json:"driversLicense,omitempty"`
	Passport       string `json:"passport,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

func (h *Handler) get(c *gin.Context) {
	person, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "person not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch person", nil)
		}
		return
	}
	respond.OK(c, personResponse{
		ID:             person.ID,
		Name:           person.Name,
		Email:          person.Email,
		SSN:            person.SSN,
		DriversLicense: person.DriversLicense,
		Passport:       person.Passport,
		CreatedAt:      person.CreatedAt.Format(time.RFC3339),
	})
}
