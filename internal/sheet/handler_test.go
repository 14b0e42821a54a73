package sheet

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func TestHandlersRejectMalformedSheetIDs(t *testing.T) {
	h := NewHandler(nil)

	ids := []string{
		"",
		"not-a-typeid",
		// Well-formed typeid, wrong prefix.
		"user_01h2xcejqtf2nbrexx3vqjhp41",
	}
	for _, id := range ids {
		req := httptest.NewRequest("GET", "/api/sheets/"+id, nil)
		req = mux.SetURLVars(req, map[string]string{"sheetId": id})
		rec := httptest.NewRecorder()
		h.Get(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("id %q: status = %d, want %d", id, rec.Code, http.StatusNotFound)
		}
	}
}
