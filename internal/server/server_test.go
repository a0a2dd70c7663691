package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/pokedex-ng/internal/api"
	"github.com/thesavant42/pokedex-ng/internal/db"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

func newTestStore(t *testing.T) *db.DB {
	t.Helper()
	store, err := db.New(":memory:")
	if err != nil {
		t.Fatalf("db.New() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	_, err = store.ImportPokemon(ctx, []models.Pokemon{
		{ID: "1", Name: "Bulbasaur", Types: []string{"grass", "poison"},
			Stats: models.Stats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45},
			Moves: []string{"Tackle", "Growl"}},
		{ID: "3", Name: "Venusaur", Types: []string{"grass", "poison"}, Moves: []string{"Growl"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = store.ImportMoves(ctx, []models.Move{
		{Name: "Tackle", Type: "normal", Category: "/img/physical.png", Power: 40, Accuracy: 100, PP: 35},
	})
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func newTestServer(t *testing.T, store Store) *httptest.Server {
	t.Helper()
	h := NewHandler(store, log.New(io.Discard), "test")
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestListPokemon(t *testing.T) {
	srv := newTestServer(t, newTestStore(t))

	var list []models.Pokemon
	resp := getJSON(t, srv.URL+"/pokemon", &list)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(list) != 2 || list[0].Name != "Bulbasaur" || list[0].HP != 45 {
		t.Errorf("list = %+v", list)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}

func TestGetPokemon(t *testing.T) {
	srv := newTestServer(t, newTestStore(t))

	var p models.Pokemon
	resp := getJSON(t, srv.URL+"/pokemon/bulbasaur", &p)
	if resp.StatusCode != http.StatusOK || p.ID != "1" {
		t.Errorf("status %d, pokemon %+v", resp.StatusCode, p)
	}
}

func TestGetPokemonNotFoundIsProblem(t *testing.T) {
	srv := newTestServer(t, newTestStore(t))

	var problem Problem
	resp := getJSON(t, srv.URL+"/pokemon/9999", &problem)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if resp.Header.Get("Content-Type") != "application/problem+json" {
		t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
	}
	if problem.Status != 404 || problem.Instance != "/pokemon/9999" {
		t.Errorf("problem = %+v", problem)
	}
}

func TestPokemonMoves(t *testing.T) {
	srv := newTestServer(t, newTestStore(t))

	var moves []models.Move
	getJSON(t, srv.URL+"/pokemon/1/moves", &moves)
	if len(moves) != 1 || moves[0].Name != "Tackle" {
		t.Errorf("moves = %+v, want only Tackle", moves)
	}

	// Form ids fall back to their base entry
	var formMoves []models.Move
	resp := getJSON(t, srv.URL+"/pokemon/3-mega-venusaur/moves", &formMoves)
	if resp.StatusCode != http.StatusOK || len(formMoves) != 0 {
		t.Errorf("status %d, moves %+v", resp.StatusCode, formMoves)
	}
}

func TestListMovesAndHealth(t *testing.T) {
	srv := newTestServer(t, newTestStore(t))

	var moves []models.Move
	getJSON(t, srv.URL+"/moves", &moves)
	if len(moves) != 1 {
		t.Errorf("moves = %+v", moves)
	}

	var health HealthResponse
	getJSON(t, srv.URL+"/health", &health)
	if health.Status != "healthy" || health.PokemonCount != 2 || health.MoveCount != 1 {
		t.Errorf("health = %+v", health)
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	srv := newTestServer(t, newTestStore(t))

	if resp := getJSON(t, srv.URL+"/berries", nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown route status = %d", resp.StatusCode)
	}

	resp, err := http.Post(srv.URL+"/pokemon", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", resp.StatusCode)
	}
}

type failingStore struct {
	Store
}

func (failingStore) ListPokemon(context.Context) ([]models.Pokemon, error) {
	return nil, errors.New("disk on fire")
}

func TestStoreErrorHidesDetail(t *testing.T) {
	srv := newTestServer(t, failingStore{})

	var problem Problem
	resp := getJSON(t, srv.URL+"/pokemon", &problem)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if problem.Detail != "Internal Server Error" {
		t.Errorf("detail leaked: %q", problem.Detail)
	}
}

func TestClientAgainstServer(t *testing.T) {
	srv := newTestServer(t, newTestStore(t))
	client := api.NewClient(srv.URL, time.Second, nil)
	ctx := context.Background()

	if _, err := client.FetchPokemon(ctx, "9999"); !errors.Is(err, api.ErrNotFound) {
		t.Errorf("FetchPokemon(9999) error = %v, want ErrNotFound", err)
	}

	p, err := client.FetchPokemon(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	moves, err := client.FetchPokemonMoves(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 1 || moves[0].Name != "Tackle" {
		t.Errorf("moves = %+v", moves)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	h := NewHandler(newTestStore(t), log.New(io.Discard), "test")
	s := New(NewRouter(h), Options{MaxConns: 4, ShutdownTimeout: time.Second}, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health error = %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
