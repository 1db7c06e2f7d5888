package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// priceFilterLimit caps how many records a price-only retrieval returns
const priceFilterLimit = 10

// minQuestionLength is the shortest question Answer accepts
const minQuestionLength = 3

// AdvisorConfig holds configuration for the advisor service
type AdvisorConfig struct {
	GeneratorTimeout   time.Duration
	EnableDebugLogging bool
}

// AdvisorService composes the pipeline: classify, resolve entities, fetch
// records, attach comparison/recommendation payloads, render an answer.
// Generators are tried in order, each bounded by a timeout; any failure
// degrades to the deterministic renderer, never to the caller.
type AdvisorService struct {
	store      domain.PhoneRepository
	generators []domain.Generator

	extractor *CriteriaExtractor
	resolver  *EntityResolver
	ranker    *Ranker
	renderer  Renderer

	generatorTimeout   time.Duration
	enableDebugLogging bool
}

// NewAdvisorService creates an advisor service with its dependencies. The
// generators slice may be empty, in which case every answer uses the
// deterministic renderer.
func NewAdvisorService(store domain.PhoneRepository, generators []domain.Generator, config AdvisorConfig) *AdvisorService {
	timeout := config.GeneratorTimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &AdvisorService{
		store:              store,
		generators:         generators,
		extractor:          NewCriteriaExtractor(config.EnableDebugLogging),
		resolver:           NewEntityResolver(config.EnableDebugLogging),
		ranker:             NewRanker(config.EnableDebugLogging),
		generatorTimeout:   timeout,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Answer resolves a question end to end and returns prose. It fails only for
// malformed input or an unreachable store; every retrievable state ends in a
// string via the fallback chain.
func (s *AdvisorService) Answer(ctx context.Context, question string) (string, error) {
	if len(strings.TrimSpace(question)) < minQuestionLength {
		return "", domain.ErrInvalidQuestion
	}

	result, err := s.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}

	return s.render(ctx, result), nil
}

// Retrieve runs the structured half of the pipeline: classification, entity
// resolution, and record fetching with the fallback ladder
// (resolved entities, then price filter, then full catalog for
// recommendations, then nothing).
func (s *AdvisorService) Retrieve(ctx context.Context, question string) (*domain.QueryResult, error) {
	intent, criteria := s.extractor.Classify(question)

	names, err := s.store.ListModelNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := &domain.QueryResult{
		Question: question,
		Intent:   intent,
		Criteria: criteria,
	}

	resolved := s.resolver.ResolveNames(question, names)

	switch {
	case len(resolved) > 0:
		for _, name := range resolved {
			record, err := s.store.GetByName(ctx, name)
			if err != nil {
				if errors.Is(err, domain.ErrPhoneNotFound) {
					continue
				}
				return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
			}
			result.Phones = append(result.Phones, *record)
		}
	case criteria.HasPriceMax:
		phones, err := s.store.ListUnderPrice(ctx, criteria.PriceMax, priceFilterLimit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		result.Phones = phones
	case intent == domain.IntentRecommendation:
		phones, err := s.store.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		result.Phones = phones
	}

	if intent == domain.IntentComparison && len(result.Phones) >= 2 {
		comparison := Diff(result.Phones[0], result.Phones[1])
		result.Comparison = &comparison
	}
	if intent == domain.IntentRecommendation {
		result.TopPicks = s.ranker.Rank(result.Phones, criteria)
	}

	if s.enableDebugLogging {
		log.Printf("[ADVISOR] intent=%s phones=%d resolved=%v", intent, len(result.Phones), resolved)
	}

	return result, nil
}

// render walks the generation strategies in order and falls back to the
// deterministic renderer when none produces text. Generators are only
// consulted when there are records to talk about.
func (s *AdvisorService) render(ctx context.Context, result *domain.QueryResult) string {
	if len(result.Phones) > 0 {
		for _, gen := range s.generators {
			text, err := s.tryGenerator(ctx, gen, result)
			if err == nil && strings.TrimSpace(text) != "" {
				return text
			}

			switch {
			case errors.Is(err, domain.ErrGeneratorQuota):
				log.Printf("[ADVISOR] generator %s over quota, trying next strategy", gen.Name())
			case err != nil:
				log.Printf("[ADVISOR] generator %s failed: %v", gen.Name(), err)
			default:
				log.Printf("[ADVISOR] generator %s returned empty text", gen.Name())
			}
		}
	}

	return s.renderer.Render(result)
}

func (s *AdvisorService) tryGenerator(ctx context.Context, gen domain.Generator, result *domain.QueryResult) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.generatorTimeout)
	defer cancel()
	return gen.Generate(genCtx, result)
}
