package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
)

var (
	ErrCardNotFound     = errors.New("product is not in the current recommendation list")
	ErrGenerateInFlight = errors.New("description generation is already in flight for this card")
	ErrNoGeneratedText  = errors.New("no generated description available for this card")
	ErrListReplaced     = errors.New("recommendation list changed while generating")
)

// cardOverlay is the ephemeral per-card state for the generated-description
// toggle. It is keyed by product id, scoped to the current recommendation
// list, and never written back into the Product record.
type cardOverlay struct {
	generating      bool
	original        string
	generated       string
	enhancementType string
	showGenerated   bool
}

type CardView struct {
	ProductID       string `json:"product_id"`
	Original        string `json:"original_description"`
	Generated       string `json:"generated_description,omitempty"`
	EnhancementType string `json:"enhancement_type,omitempty"`
	Generating      bool   `json:"generating"`
	ShowGenerated   bool   `json:"show_generated"`
	DisplayText     string `json:"display_text"`
}

// GenerateCardDescription drives one card's generation lifecycle. A second
// generate on the same card is rejected while one is in flight; a card that
// already holds generated text just switches display without a new request.
func (s *ChatService) GenerateCardDescription(ctx context.Context, sessionID, productID string, enhanceExisting bool) (*CardView, error) {
	conv, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	product, ok := conv.findProduct(productID)
	if !ok {
		conv.mu.Unlock()
		return nil, ErrCardNotFound
	}
	card := conv.cards[productID]
	if card == nil {
		card = &cardOverlay{original: product.Description}
		conv.cards[productID] = card
	}
	if card.generating {
		conv.mu.Unlock()
		return nil, ErrGenerateInFlight
	}
	if card.generated != "" {
		card.showGenerated = true
		view := cardView(productID, card)
		conv.mu.Unlock()
		return view, nil
	}
	card.generating = true
	token := conv.listSeq
	conv.mu.Unlock()

	resp, err := s.gateway.GenerateDescription(ctx, backend.GenerateDescriptionRequest{
		ProductID:       productID,
		EnhanceExisting: enhanceExisting,
	})

	conv.mu.Lock()
	defer conv.mu.Unlock()
	card.generating = false

	if token != conv.listSeq {
		// The list this card belonged to is gone; its overlay was
		// discarded with it.
		s.logger.Info("generated description discarded with its list",
			zap.String("session_id", sessionID),
			zap.String("product_id", productID))
		return nil, ErrListReplaced
	}

	if err != nil {
		s.logger.Warn("description generation failed",
			zap.String("session_id", sessionID),
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, fmt.Errorf("generate description: %w", err)
	}

	card.original = resp.OriginalDescription
	card.generated = resp.GeneratedDescription
	card.enhancementType = resp.EnhancementType
	card.showGenerated = true
	return cardView(productID, card), nil
}

// ToggleCard switches a card between its original and generated text without
// issuing a request.
func (s *ChatService) ToggleCard(sessionID, productID string, showGenerated bool) (*CardView, error) {
	conv, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()

	if _, ok := conv.findProduct(productID); !ok {
		return nil, ErrCardNotFound
	}
	card := conv.cards[productID]
	if card == nil || (showGenerated && card.generated == "") {
		return nil, ErrNoGeneratedText
	}
	card.showGenerated = showGenerated
	return cardView(productID, card), nil
}

func (s *ChatService) Card(sessionID, productID string) (*CardView, error) {
	conv, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()

	product, ok := conv.findProduct(productID)
	if !ok {
		return nil, ErrCardNotFound
	}
	card := conv.cards[productID]
	if card == nil {
		card = &cardOverlay{original: product.Description}
	}
	return cardView(productID, card), nil
}

func cardView(productID string, card *cardOverlay) *CardView {
	view := &CardView{
		ProductID:       productID,
		Original:        card.original,
		Generated:       card.generated,
		EnhancementType: card.enhancementType,
		Generating:      card.generating,
		ShowGenerated:   card.showGenerated,
		DisplayText:     card.original,
	}
	if card.showGenerated && card.generated != "" {
		view.DisplayText = card.generated
	}
	return view
}
