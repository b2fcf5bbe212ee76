package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnshRaj112/mealtracker-backend/internal/middleware"
	"github.com/AnshRaj112/mealtracker-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealRequest is the body of create and update requests.
type MealRequest struct {
	Title    string      `json:"title"`
	Calories numericText `json:"calories"`
	Picture  *string     `json:"picture"`
}

func (req MealRequest) input() services.MealInput {
	return services.MealInput{
		Title:    req.Title,
		Calories: string(req.Calories),
		Picture:  req.Picture,
	}
}

// numericText keeps the text of a JSON number or string. Booleans become
// "1" and "0". Any other JSON value decodes to "" and fails calorie
// validation.
type numericText string

func (n *numericText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = numericText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*n = numericText(num)
		return nil
	}
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		*n = "0"
		if flag {
			*n = "1"
		}
		return nil
	}
	*n = ""
	return nil
}

type MealHandler struct {
	meals *services.MealService
	log   zerolog.Logger
}

func NewMealHandler(meals *services.MealService, log zerolog.Logger) *MealHandler {
	return &MealHandler{meals: meals, log: log}
}

// objectIDLength is the byte length of an ObjectID. A raw string of that
// length is taken as the id bytes themselves.
const objectIDLength = 12

// parseObjectID accepts a 24-character hex id or a 12-byte raw id.
func parseObjectID(s string) (primitive.ObjectID, bool) {
	if len(s) == objectIDLength {
		var id primitive.ObjectID
		copy(id[:], s)
		return id, true
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseID reads the {id} URL parameter and answers 404 when it is not an
// ObjectID, so malformed ids never reach the store.
func parseID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, ok := parseObjectID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, services.MsgInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}

// fail maps service errors to responses. Errors that are neither validation
// nor not-found failures are answered with status.
func (h *MealHandler) fail(w http.ResponseWriter, r *http.Request, err error, status int) {
	var verr *services.ValidationError
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, InvalidFields: verr.InvalidFields})
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Message)
	default:
		h.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("meal store error")
		writeError(w, status, err.Error())
	}
}

// ListMeals handles GET /api/meals?page=N.
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	page, err := h.meals.List(ctx, services.PageIndex(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// ListUserMeals handles GET /api/user/meals/{id}?page=N.
func (h *MealHandler) ListUserMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	page, err := h.meals.ListByUser(ctx, userID, services.PageIndex(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetMeal handles GET /api/meals/{id}.
func (h *MealHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meal, err := h.meals.Get(ctx, id)
	if err != nil {
		h.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

// CreateMeal handles POST /api/meals for the authenticated user.
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req MealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meal, err := h.meals.Create(ctx, req.input(), middleware.UserFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}

// UpdateMeal handles PATCH /api/meals/{id}. The response is the meal as it
// was before the update. Field errors are reported before a malformed id.
func (h *MealHandler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	var req MealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	if err := services.ValidateMeal(req.input()); err != nil {
		h.fail(w, r, err, http.StatusBadRequest)
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prior, err := h.meals.Update(ctx, id, req.input())
	if err != nil {
		h.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, prior)
}

// DeleteMeal handles DELETE /api/meals/{id}. Only the owner's request
// deletes; every caller gets the meal back.
func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	meal, err := h.meals.Delete(ctx, id, middleware.UserFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}
