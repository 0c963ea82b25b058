package datamuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestSimilarSounding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sl"); got != "fare" {
			t.Errorf("sl param = %q, want fare", got)
		}
		if got := r.URL.Query().Get("max"); got != "5" {
			t.Errorf("max param = %q, want 5", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// One entry without a word field must be skipped.
		w.Write([]byte(`[{"word":"fair","score":100},{"score":90},{"word":"pare"},{"word":""}]`))
	}))
	defer srv.Close()

	c := NewClient(WithEndpoint(srv.URL), WithMaxResults(5))
	got, err := c.SimilarSounding(context.Background(), "fare")
	if err != nil {
		t.Fatalf("SimilarSounding: %v", err)
	}
	if want := []string{"fair", "pare"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SimilarSounding = %v, want %v", got, want)
	}
}

func TestSimilarSoundingEscapesWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sl"); got != "don't" {
			t.Errorf("sl param = %q, want don't", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(WithEndpoint(srv.URL))
	got, err := c.SimilarSounding(context.Background(), "don't")
	if err != nil {
		t.Fatalf("SimilarSounding: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("SimilarSounding = %v, want empty", got)
	}
}

func TestSimilarSoundingErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithEndpoint(srv.URL))
	if _, err := c.SimilarSounding(context.Background(), "fare"); err == nil {
		t.Error("expected an error on status 500")
	}
}

func TestSimilarSoundingBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(WithEndpoint(srv.URL))
	if _, err := c.SimilarSounding(context.Background(), "fare"); err == nil {
		t.Error("expected an error on a malformed body")
	}
}
