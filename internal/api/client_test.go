package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/thesavant42/pokedex-ng/internal/models"
)

const bulbasaurJSON = `{
	"_id": "01HZX", "id": 1, "name": "Bulbasaur", "avatar": "/img/1.png",
	"types": ["grass", "poison"],
	"hp": 45, "attack": 49, "defense": 49, "sp_attack": 65, "sp_defense": 65, "speed": 45,
	"total": 318, "moves": ["Tackle", "Growl"]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[" + bulbasaurJSON + `, {"id": "3-mega-venusaur", "name": "Mega Venusaur", "types": ["grass"]}]`))
	})
	mux.HandleFunc("/pokemon/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bulbasaurJSON))
	})
	mux.HandleFunc("/pokemon/1/moves", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "Tackle", "type": "normal", "category": "/img/physical.png", "power": 40, "accuracy": 100, "pp": 35}]`))
	})
	mux.HandleFunc("/pokemon/9999", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title": "Not Found", "status": 404}`))
	})
	mux.HandleFunc("/pokemon/0", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	mux.HandleFunc("/pokemon/500", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/pokemon/bad", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "name": `))
	})
	mux.HandleFunc("/moves", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPokemonList(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL+"/", time.Second, nil)

	list, err := c.FetchPokemonList(context.Background())
	if err != nil {
		t.Fatalf("FetchPokemonList() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d records, want 2", len(list))
	}
	if list[0].Name != "Bulbasaur" || list[0].HP != 45 || list[0].ID != "1" {
		t.Errorf("first record = %+v", list[0])
	}
	if list[1].ID != "3-mega-venusaur" {
		t.Errorf("string dex id decoded as %q", list[1].ID)
	}
}

func TestFetchPokemon(t *testing.T) {
	c := NewClient(newTestServer(t).URL, time.Second, nil)

	p, err := c.FetchPokemon(context.Background(), "1")
	if err != nil {
		t.Fatalf("FetchPokemon(1) error = %v", err)
	}
	if p.Name != "Bulbasaur" || len(p.Moves) != 2 {
		t.Errorf("FetchPokemon(1) = %+v", p)
	}
}

func TestFetchPokemonNotFound(t *testing.T) {
	c := NewClient(newTestServer(t).URL, time.Second, nil)

	for _, id := range []models.DexID{"9999", "0", ""} {
		t.Run(string(id), func(t *testing.T) {
			_, err := c.FetchPokemon(context.Background(), id)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("FetchPokemon(%q) error = %v, want ErrNotFound", id, err)
			}
			if errors.Is(err, ErrNetwork) {
				t.Errorf("not-found error also matches ErrNetwork: %v", err)
			}
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Errorf("error is not a *RequestError: %T", err)
			}
		})
	}
}

func TestFetchNetworkErrors(t *testing.T) {
	c := NewClient(newTestServer(t).URL, time.Second, nil)

	tests := []struct {
		id         models.DexID
		wantStatus int
	}{
		{"500", http.StatusInternalServerError},
		{"bad", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			_, err := c.FetchPokemon(context.Background(), tt.id)
			if !errors.Is(err, ErrNetwork) {
				t.Fatalf("error = %v, want ErrNetwork", err)
			}
			var reqErr *RequestError
			if !errors.As(err, &reqErr) || reqErr.Status != tt.wantStatus {
				t.Errorf("error = %#v, want status %d", err, tt.wantStatus)
			}
		})
	}
}

func TestFetchListNotFoundIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, time.Second, nil)

	fetches := map[string]func() error{
		"pokemon": func() error { _, err := c.FetchPokemonList(context.Background()); return err },
		"moves":   func() error { _, err := c.FetchMoves(context.Background()); return err },
		"learnset": func() error {
			_, err := c.FetchPokemonMoves(context.Background(), "1")
			return err
		},
	}

	for name, fetch := range fetches {
		t.Run(name, func(t *testing.T) {
			err := fetch()
			if !errors.Is(err, ErrNetwork) {
				t.Fatalf("error = %v, want ErrNetwork", err)
			}
			if IsNotFound(err) {
				t.Errorf("list 404 reported as not found: %v", err)
			}
			if msg := Message(err); !strings.Contains(msg, "status 404") || strings.Contains(msg, "No Pokémon") {
				t.Errorf("Message() = %q", msg)
			}
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second, nil).FetchMoves(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("error = %v, want ErrNetwork", err)
	}
	if !strings.Contains(Message(err), "Could not reach") {
		t.Errorf("Message() = %q", Message(err))
	}
}

func TestFetchCancelled(t *testing.T) {
	c := NewClient(newTestServer(t).URL, time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchPokemonList(ctx)
	if !errors.Is(err, ErrNetwork) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want ErrNetwork wrapping context.Canceled", err)
	}
}

func TestFetchPokemonMoves(t *testing.T) {
	c := NewClient(newTestServer(t).URL, time.Second, nil)

	moves, err := c.FetchPokemonMoves(context.Background(), "1")
	if err != nil {
		t.Fatalf("FetchPokemonMoves(1) error = %v", err)
	}
	if len(moves) != 1 || moves[0].Name != "Tackle" || moves[0].Power != 40 {
		t.Errorf("moves = %+v", moves)
	}
}

func TestFetchMovesNullBodyIsEmpty(t *testing.T) {
	c := NewClient(newTestServer(t).URL, time.Second, nil)

	moves, err := c.FetchMoves(context.Background())
	if err != nil {
		t.Fatalf("FetchMoves() error = %v", err)
	}
	if moves == nil || len(moves) != 0 {
		t.Errorf("moves = %#v, want empty slice", moves)
	}
}

func TestMessage(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Message(nil) should be empty")
	}
	notFound := &RequestError{Endpoint: "/pokemon/9999", Status: 404, Err: ErrNotFound}
	if !strings.Contains(Message(notFound), "No Pokémon") {
		t.Errorf("Message(not found) = %q", Message(notFound))
	}
	status := &RequestError{Endpoint: "/moves", Status: 502, Err: ErrNetwork}
	if !strings.Contains(Message(status), "502") {
		t.Errorf("Message(502) = %q", Message(status))
	}
}

func TestNewClientWithLoggingWritesLog(t *testing.T) {
	srv := newTestServer(t)
	logPath := filepath.Join(t.TempDir(), "logs", "pokedex.log")

	c := NewClientWithLogging(srv.URL, time.Second, logPath)
	if _, err := c.FetchPokemonList(context.Background()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "/pokemon") {
		t.Errorf("log does not mention the endpoint:\n%s", data)
	}
}
