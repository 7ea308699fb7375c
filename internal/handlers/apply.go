package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thepitchdeck/portal/internal/applications"
	"github.com/thepitchdeck/portal/internal/middleware"
	"github.com/thepitchdeck/portal/internal/view"
	"github.com/thepitchdeck/portal/web/src/templates/layouts"
	"github.com/thepitchdeck/portal/web/src/templates/pages"
)

const applyTitle = "Apply"

// ApplyHandler serves the pitch-deck application form.
type ApplyHandler struct {
	service *applications.Service
}

// NewApplyHandler creates an ApplyHandler.
func NewApplyHandler(service *applications.Service) *ApplyHandler {
	return &ApplyHandler{service: service}
}

// ApplyGet renders an empty form (GET /apply/pitch-deck).
func (h *ApplyHandler) ApplyGet(c echo.Context) error {
	return h.render(c, http.StatusOK, view.GetFlashData(c), pages.ApplyData{})
}

// ApplyPost submits the application (POST /apply/pitch-deck). Invalid input
// re-renders the form with field errors; a backend failure keeps the input
// and shows an error message.
func (h *ApplyHandler) ApplyPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var form applications.Form
	bindErr := echo.FormFieldBinder(c).
		FailFast(false).
		String("first_name", &form.FirstName).
		String("last_name", &form.LastName).
		String("email", &form.Email).
		String("school", &form.School).
		String("grade", &form.Grade).
		String("team_name", &form.TeamName).
		Int("team_size", &form.TeamSize).
		String("pitch_summary", &form.PitchSummary).
		BindError()

	if bindErr != nil {
		// Only team_size can fail to bind.
		fieldErrs := h.service.Check(form)
		if fieldErrs == nil {
			fieldErrs = applications.FieldErrors{}
		}
		fieldErrs["team_size"] = "Team size must be a whole number."
		logger.Debug("Application rejected by form checks", "fields", len(fieldErrs))
		return h.render(c, http.StatusUnprocessableEntity, view.FlashData{}, pages.ApplyData{Form: form, Errors: fieldErrs})
	}

	id, fieldErrs, err := h.service.Submit(ctx, c.Cookies(), applications.PitchDeck, form)
	switch {
	case errors.Is(err, applications.ErrInvalid):
		logger.Debug("Application rejected by form checks", "fields", len(fieldErrs))
		return h.render(c, http.StatusUnprocessableEntity, view.FlashData{}, pages.ApplyData{Form: form, Errors: fieldErrs})
	case err != nil:
		logger.Error("Failed to submit application", "error", err)
		flash := view.FlashData{Error: []string{"We couldn't submit your application. Please try again."}}
		return h.render(c, http.StatusBadGateway, flash, pages.ApplyData{Form: form})
	}

	logger.Info("Application submitted", "application_id", id)
	view.SetFlashSuccess(c, "Application submitted! We'll be in touch soon.")
	return c.Redirect(http.StatusSeeOther, "/competitions")
}

func (h *ApplyHandler) render(c echo.Context, status int, flash view.FlashData, data pages.ApplyData) error {
	page := layouts.Public(c.Request().Context(), applyTitle, flash, pages.Apply(data))
	return c.Render(status, "", page)
}
