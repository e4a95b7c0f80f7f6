package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dmarin/tasko/internal/service"
	"github.com/dmarin/tasko/internal/transport/http/middleware"
	"github.com/dmarin/tasko/pkg/validator"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.CreateActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateActivity(input.Title, input.Description); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	activity, err := h.activityService.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "Title and description are required")
		} else {
			log.Printf("ERROR create activity: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	search := r.URL.Query().Get("search")

	activities, err := h.activityService.List(r.Context(), userID, search)
	if err != nil {
		log.Printf("ERROR list activities: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.UpdateActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	activity, err := h.activityService.Update(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingID):
			writeError(w, http.StatusBadRequest, "MISSING_ID", "Activity ID is required")
		case errors.Is(err, service.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Activity not found")
		default:
			log.Printf("ERROR update activity: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.activityService.Delete(r.Context(), userID, body.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingID):
			writeError(w, http.StatusBadRequest, "MISSING_ID", "Activity ID is required")
		case errors.Is(err, service.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Activity not found")
		default:
			log.Printf("ERROR delete activity: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Activity deleted successfully"})
}
