package registry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/cordon/internal/registry"
	"github.com/JaimeStill/cordon/pkg/classified"
	"github.com/JaimeStill/cordon/pkg/marking"
	"github.com/JaimeStill/cordon/pkg/pagination"
)

type mockSystem struct {
	listFn        func(ctx context.Context, page pagination.PageRequest, filters registry.Filters) (*pagination.PageResult[registry.Token], error)
	findFn        func(ctx context.Context, id uuid.UUID) (*registry.Token, error)
	findByTokenFn func(ctx context.Context, token string) (*registry.Token, error)
	createFn      func(ctx context.Context, cmd registry.CreateCommand) (*registry.Token, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	vocabularyFn  func(ctx context.Context) classified.Classified[[]registry.Token]
}

func (m *mockSystem) Handler() *registry.Handler {
	return newTestHandler(m)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters registry.Filters) (*pagination.PageResult[registry.Token], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*registry.Token, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) FindByToken(ctx context.Context, token string) (*registry.Token, error) {
	return m.findByTokenFn(ctx, token)
}

func (m *mockSystem) Create(ctx context.Context, cmd registry.CreateCommand) (*registry.Token, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockSystem) Vocabulary(ctx context.Context) classified.Classified[[]registry.Token] {
	return m.vocabularyFn(ctx)
}

func newTestHandler(sys *mockSystem) *registry.Handler {
	return registry.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func setupMux(h *registry.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleToken() registry.Token {
	return registry.Token{
		ID:          uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Token:       "SIERRA",
		Kind:        registry.KindLevel,
		Description: "Second hierarchical tier.",
		CreatedAt:   time.Now().Truncate(time.Second),
	}
}

func TestHandlerList(t *testing.T) {
	tok := sampleToken()
	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, _ registry.Filters) (*pagination.PageResult[registry.Token], error) {
			result := pagination.NewPageResult([]registry.Token{tok}, 1, 1, 20)
			return &result, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	t.Run("returns paginated list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/tokens", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var result pagination.PageResult[registry.Token]
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if result.Total != 1 {
			t.Errorf("total = %d, want 1", result.Total)
		}
		if len(result.Data) != 1 || result.Data[0].Token != "SIERRA" {
			t.Errorf("data = %+v, want single SIERRA token", result.Data)
		}
	})

	t.Run("forwards kind filter", func(t *testing.T) {
		var got registry.Filters
		sys.listFn = func(_ context.Context, _ pagination.PageRequest, filters registry.Filters) (*pagination.PageResult[registry.Token], error) {
			got = filters
			result := pagination.NewPageResult([]registry.Token{}, 0, 1, 20)
			return &result, nil
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/tokens?kind=compartment", nil)
		mux.ServeHTTP(rec, req)

		if got.Kind == nil || *got.Kind != registry.KindCompartment {
			t.Errorf("kind filter = %v, want compartment", got.Kind)
		}
	})
}

func TestHandlerFind(t *testing.T) {
	tok := sampleToken()
	sys := &mockSystem{
		findFn: func(_ context.Context, id uuid.UUID) (*registry.Token, error) {
			if id != tok.ID {
				return nil, registry.ErrNotFound
			}
			return &tok, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	t.Run("returns token by id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/tokens/"+tok.ID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got registry.Token
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Token != tok.Token {
			t.Errorf("token = %q, want %q", got.Token, tok.Token)
		}
	})

	t.Run("rejects invalid uuid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/tokens/not-a-uuid", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("maps not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/tokens/"+uuid.NewString(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerFindByToken(t *testing.T) {
	tok := sampleToken()
	sys := &mockSystem{
		findByTokenFn: func(_ context.Context, token string) (*registry.Token, error) {
			if token != "SIERRA" {
				return nil, registry.ErrNotFound
			}
			return &tok, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tokens/token/SIERRA", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandlerCreate(t *testing.T) {
	sys := &mockSystem{
		createFn: func(_ context.Context, cmd registry.CreateCommand) (*registry.Token, error) {
			if cmd.Token == "" {
				return nil, registry.ErrEmptyToken
			}
			if !cmd.Kind.Valid() {
				return nil, registry.ErrInvalidKind
			}
			return &registry.Token{
				ID:          uuid.New(),
				Token:       cmd.Token,
				Kind:        cmd.Kind,
				Description: cmd.Description,
				CreatedAt:   time.Now(),
			}, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	post := func(body any) *httptest.ResponseRecorder {
		payload, _ := json.Marshal(body)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/tokens", bytes.NewReader(payload))
		mux.ServeHTTP(rec, req)
		return rec
	}

	t.Run("creates token", func(t *testing.T) {
		rec := post(registry.CreateCommand{
			Token: "TANGO",
			Kind:  registry.KindCompartment,
		})

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}

		var got registry.Token
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Token != "TANGO" || got.Kind != registry.KindCompartment {
			t.Errorf("created = %+v", got)
		}
	})

	t.Run("rejects empty token", func(t *testing.T) {
		rec := post(registry.CreateCommand{Kind: registry.KindLevel})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		rec := post(registry.CreateCommand{Token: "TANGO", Kind: "tier"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandlerDelete(t *testing.T) {
	tok := sampleToken()
	sys := &mockSystem{
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			if id != tok.ID {
				return registry.ErrNotFound
			}
			return nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	t.Run("deletes token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/tokens/"+tok.ID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})

	t.Run("maps not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/tokens/"+uuid.NewString(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerVocabulary(t *testing.T) {
	tokens := []registry.Token{
		{ID: uuid.New(), Token: "ALPHA", Kind: registry.KindLevel},
		{ID: uuid.New(), Token: "GAMMA", Kind: registry.KindCompartment},
	}

	t.Run("returns tokens and combined marking", func(t *testing.T) {
		sys := &mockSystem{
			vocabularyFn: func(_ context.Context) classified.Classified[[]registry.Token] {
				return classified.Just(tokens, marking.New([]string{"ALPHA"}, []string{"GAMMA"}))
			},
		}

		mux := setupMux(newTestHandler(sys))
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/tokens/vocabulary", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got registry.VocabularyResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Marking != "(ALPHA//GAMMA)" {
			t.Errorf("marking = %q, want (ALPHA//GAMMA)", got.Marking)
		}
		if len(got.Tokens) != 2 {
			t.Errorf("tokens = %d, want 2", len(got.Tokens))
		}
	})

	t.Run("maps failure to 500", func(t *testing.T) {
		sys := &mockSystem{
			vocabularyFn: func(_ context.Context) classified.Classified[[]registry.Token] {
				return classified.Nothing[[]registry.Token](errors.New("db down"), marking.Marking{})
			},
		}

		mux := setupMux(newTestHandler(sys))
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/tokens/vocabulary", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
	})
}
