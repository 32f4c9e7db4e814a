package wmfl_site_client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wmfl-league/leagueadmin/go/clients"
)

func TestFetchStandings(t *testing.T) {
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<table></table>"))
	}))
	defer srv.Close()

	body, err := NewSiteClient(srv.URL).FetchStandings(context.Background(), 1056456)
	if err != nil {
		t.Fatalf("FetchStandings: %v", err)
	}
	if string(body) != "<table></table>" {
		t.Errorf("body = %q", body)
	}
	if gotPath != "/tournament/1056456/standings" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAgent != UserAgent {
		t.Errorf("user agent = %q", gotAgent)
	}
}

func TestFetchStandingsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewSiteClient(srv.URL).FetchStandings(context.Background(), 1)
	var apiErr *clients.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("err = %v, want APIError 404", err)
	}
}

func TestDefaultBaseURL(t *testing.T) {
	if got := NewSiteClient("").URL(StandingsPath(7)); got != "https://wmfl.ru/tournament/7/standings" {
		t.Errorf("url = %q", got)
	}
}
