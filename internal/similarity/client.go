// Package similarity scores resume text against a reference profile using
// text embeddings.
package similarity

import (
	"context"
	"fmt"
	"math"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// IdealProfile is the fixed reference sentence every resume is compared
// against.
const IdealProfile = "Strong resume with clear experience, skills, projects, education, quantified achievements and action verbs."

// embeddingModel is the Gemini embedding model used for both texts.
const embeddingModel = "text-embedding-004"

// Scorer produces a semantic similarity value in [0,1] between resume text
// and the reference profile.
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
	Close() error
}

// GeminiScorer implements Scorer using Gemini embeddings.
type GeminiScorer struct {
	client *genai.Client
}

// NewGeminiScorer creates a scorer backed by the Gemini API.
func NewGeminiScorer(ctx context.Context, apiKey string) (*GeminiScorer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiScorer{client: client}, nil
}

// Score embeds the reference profile and the resume text in one batch and
// returns their cosine similarity, clamped to [0,1].
func (s *GeminiScorer) Score(ctx context.Context, text string) (float64, error) {
	em := s.client.EmbeddingModel(embeddingModel)

	batch := em.NewBatch().
		AddContent(genai.Text(IdealProfile)).
		AddContent(genai.Text(text))

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to embed content: %w", err)
	}
	if len(res.Embeddings) != 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(res.Embeddings))
	}

	return clamp01(cosine(res.Embeddings[0].Values, res.Embeddings[1].Values)), nil
}

// Close releases the underlying API client.
func (s *GeminiScorer) Close() error {
	return s.client.Close()
}

// cosine computes cosine similarity between two embedding vectors. Returns
// 0 for mismatched or zero-magnitude vectors.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
