package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glowpanel/engine/internal/adapter/http/dto"
	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
)

// AffiliateService defines the behavior needed by AffiliateHandler.
type AffiliateService interface {
	ListCommissions(ctx context.Context, input usecase.ListCommissionsInput) ([]*domain.AffiliateTransaction, error)
	GetEarnings(ctx context.Context, accountID string) (*usecase.EarningsSummary, error)
}

// AffiliateHandler handles affiliate-related HTTP requests.
type AffiliateHandler struct {
	affiliateUC AffiliateService
}

// NewAffiliateHandler creates a new AffiliateHandler.
func NewAffiliateHandler(affiliateUC AffiliateService) *AffiliateHandler {
	return &AffiliateHandler{affiliateUC: affiliateUC}
}

// ListCommissions lists commission records credited to an account.
func (h *AffiliateHandler) ListCommissions(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	commissions, err := h.affiliateUC.ListCommissions(r.Context(), usecase.ListCommissionsInput{
		ReferrerID: accountID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list commissions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CommissionsFromDomain(commissions))
}

// GetEarnings returns the affiliate earnings summary for an account.
func (h *AffiliateHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	summary, err := h.affiliateUC.GetEarnings(r.Context(), accountID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get earnings", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EarningsFromUseCase(summary))
}
