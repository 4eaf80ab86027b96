package handlers

import (
	"net/http"

	"github.com/hoanghai1803/newsgenie/internal/pipeline"
)

// GetCategories handles GET /api/categories. The list is static; clients use
// it to render the category picker.
func GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pipeline.AllCategories)
}
