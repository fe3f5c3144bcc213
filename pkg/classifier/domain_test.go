package classifier

import (
	"strings"
	"testing"

	"github.com/proposalworks/rfp-triage/models"
)

func TestDetectDomain(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.DomainOverlay
	}{
		{
			name: "no overlay signal",
			text: "our staffing model uses 120 fte across two sites",
			want: models.DomainGeneral,
		},
		{
			name: "insurance",
			text: "claims intake for policyholder services, fnol handling and underwriting support",
			want: models.DomainInsurance,
		},
		{
			name: "fraud aml kyc",
			text: "fraud review, aml transaction monitoring, kyc onboarding and sanctions screening",
			want: models.DomainFraudAmlKyc,
		},
		{
			name: "healthcare",
			text: "patient access and member services for payer clinical programs",
			want: models.DomainHealthcare,
		},
		{
			name: "tie keeps first declared domain",
			text: "banking and collections",
			want: models.DomainBanking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDomain(strings.ToLower(tt.text)); got != tt.want {
				t.Errorf("DetectDomain() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectPricing(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.PricingFlag
	}{
		{
			name: "strong phrase short-circuits",
			text: "the attached rate card lists blended rates by role",
			want: models.HasPricing,
		},
		{
			name: "per fte is a strong phrase",
			text: "billed per fte on a monthly basis",
			want: models.HasPricing,
		},
		{
			name: "two weak signals are adjacent",
			text: "we expect meaningful cost savings in year one",
			want: models.PricingAdjacent,
		},
		{
			name: "single weak signal is not enough",
			text: "the total budget will be confirmed later",
			want: models.NoPricing,
		},
		{
			name: "no signal at all",
			text: "our delivery centers operate around the clock",
			want: models.NoPricing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPricing(strings.ToLower(tt.text)); got != tt.want {
				t.Errorf("DetectPricing() = %s, want %s", got, tt.want)
			}
		})
	}
}
