package search

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/vvquest-api/internal/config"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/engine"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/engine/mocks"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/postprocess"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type stubRewriter struct {
	out   string
	calls int
}

func (s *stubRewriter) RewriteQuery(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.out, nil
}

func newProcessor(t *testing.T, urls config.URLConfig) *postprocess.Processor {
	t.Helper()
	p, err := postprocess.New(urls, "/srv")
	if err != nil {
		t.Fatalf("postprocess.New() failed: %v", err)
	}
	return p
}

func TestService_Search_AbsPathPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockEngine(ctrl)
	settings := engine.NewSettings(engine.Credentials{Model: "bge", APIKey: "sk-1", BaseURL: "https://a"})

	raw := []engine.Hit{{Path: "/srv/1.png"}, {Path: "/srv/2.png"}, {Path: "/srv/3.png"}}
	eng.EXPECT().
		Search(gomock.Any(), engine.SearchParams{
			Query:             "red apple",
			NResults:          3,
			ResourcePackUUIDs: []string{},
			UseLLM:            false,
			ReturnType:        engine.ReturnHintDefault,
			Credentials:       engine.Credentials{Model: "bge", APIKey: "sk-1", BaseURL: "https://a"},
		}).
		Return(raw, nil)

	svc := NewService(eng, settings, newProcessor(t, config.URLConfig{ReturnType: config.ReturnTypeAbsPath}), nil, newTestLogger())

	results, err := svc.Search(context.Background(), Request{Query: "red apple", NResults: 3})
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, hit := range raw {
		if results[i] != hit.Path {
			t.Errorf("result %d: expected %q, got %q", i, hit.Path, results[i])
		}
	}
}

func TestService_Search_HashHintAndRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockEngine(ctrl)
	settings := engine.NewSettings(engine.Credentials{})
	rewriter := &stubRewriter{out: "smiling dog"}

	eng.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p engine.SearchParams) ([]engine.Hit, error) {
			if p.Query != "happy doggo" {
				t.Errorf("Expected original query forwarded for non-ai search, got %q", p.Query)
			}
			if p.ReturnType != engine.ReturnHintHash {
				t.Errorf("Expected hash hint, got %q", p.ReturnType)
			}
			return []engine.Hit{{Path: "/srv/dog.gif", Hash: "ab12"}}, nil
		})
	eng.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p engine.SearchParams) ([]engine.Hit, error) {
			if p.Query != "smiling dog" || !p.UseLLM {
				t.Errorf("Expected rewritten llm query, got %+v", p)
			}
			if len(p.ResourcePackUUIDs) != 1 || p.ResourcePackUUIDs[0] != "pack-1" {
				t.Errorf("Expected resource packs forwarded, got %v", p.ResourcePackUUIDs)
			}
			return []engine.Hit{{Path: "/srv/dog.gif", Hash: "ab12"}}, nil
		})

	svc := NewService(eng, settings, newProcessor(t, config.URLConfig{ReturnType: config.ReturnTypeSha256}), rewriter, newTestLogger())

	if _, err := svc.Search(context.Background(), Request{Query: "happy doggo", NResults: 1}); err != nil {
		t.Fatalf("Search() failed: %v", err)
	}

	results, err := svc.Search(context.Background(), Request{
		Query:             "happy doggo",
		NResults:          1,
		AISearch:          true,
		ResourcePackUUIDs: []string{"pack-1"},
	})
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(results) != 1 || results[0] != "ab12.gif" {
		t.Errorf("Unexpected results %v", results)
	}
	if rewriter.calls != 1 {
		t.Errorf("Expected exactly one rewrite, got %d", rewriter.calls)
	}
}

func TestService_Search_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockEngine(ctrl)
	svc := NewService(eng, engine.NewSettings(engine.Credentials{}), newProcessor(t, config.URLConfig{ReturnType: config.ReturnTypeAbsPath}), nil, newTestLogger())

	if _, err := svc.Search(context.Background(), Request{Query: "  ", NResults: 5}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Expected ErrEmptyQuery, got %v", err)
	}
	if _, err := svc.Search(context.Background(), Request{Query: "x", NResults: 0}); !errors.Is(err, ErrInvalidNResults) {
		t.Errorf("Expected ErrInvalidNResults, got %v", err)
	}
}

func TestService_Search_EngineError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockEngine(ctrl)
	engineErr := errors.New("vector index unavailable")
	eng.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, engineErr)

	svc := NewService(eng, engine.NewSettings(engine.Credentials{}), newProcessor(t, config.URLConfig{ReturnType: config.ReturnTypeAbsPath}), nil, newTestLogger())

	results, err := svc.Search(context.Background(), Request{Query: "x", NResults: 2})
	if !errors.Is(err, engineErr) {
		t.Errorf("Expected engine error, got %v", err)
	}
	if results != nil {
		t.Errorf("Expected no partial results, got %v", results)
	}
}

func TestService_Search_MissingHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := mocks.NewMockEngine(ctrl)
	eng.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]engine.Hit{{Path: "/srv/a.png"}}, nil)

	svc := NewService(eng, engine.NewSettings(engine.Credentials{}), newProcessor(t, config.URLConfig{ReturnType: config.ReturnTypeSha256}), nil, newTestLogger())

	_, err := svc.Search(context.Background(), Request{Query: "x", NResults: 1})
	if !errors.Is(err, postprocess.ErrMissingHash) {
		t.Errorf("Expected ErrMissingHash, got %v", err)
	}
}
