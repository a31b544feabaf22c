package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentNumber(t *testing.T) {
	now := time.Date(2024, 2, 1, 15, 4, 5, 0, time.UTC)

	qt := NewDocumentNumber(QuotationNumberPrefix, now)
	assert.Regexp(t, regexp.MustCompile(`^QT-20240201-[0-9A-F]{6}$`), qt)

	inv := NewDocumentNumber(InvoiceNumberPrefix, now)
	assert.Regexp(t, regexp.MustCompile(`^INV-20240201-[0-9A-F]{6}$`), inv)
	assert.NotEqual(t, NewDocumentNumber(QuotationNumberPrefix, now), NewDocumentNumber(QuotationNumberPrefix, now))
}

func TestQuotation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from QuotationStatus
		to   QuotationStatus
		want bool
	}{
		{QuotationDraft, QuotationSent, true},
		{QuotationDraft, QuotationAccepted, false},
		{QuotationSent, QuotationViewed, true},
		{QuotationSent, QuotationAccepted, true},
		{QuotationViewed, QuotationDeclined, true},
		{QuotationViewed, QuotationSent, false},
		{QuotationAccepted, QuotationExpired, false},
		{QuotationExpired, QuotationDraft, false},
	}

	for _, tt := range tests {
		q := Quotation{Status: tt.from}
		assert.Equal(t, tt.want, q.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestQuotation_IsExpiredAt(t *testing.T) {
	validUntil := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	q := Quotation{Status: QuotationSent, ValidUntil: validUntil}
	assert.False(t, q.IsExpiredAt(validUntil.Add(-time.Hour)))
	assert.True(t, q.IsExpiredAt(validUntil.Add(time.Hour)))

	q.Status = QuotationAccepted
	assert.False(t, q.IsExpiredAt(validUntil.Add(time.Hour)))
}

func TestSession(t *testing.T) {
	now := time.Now()
	s := Session{Role: RoleStaff, ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(time.Minute)))
	assert.True(t, s.CanManageBackOffice())

	s.Role = "guest"
	assert.False(t, s.CanManageBackOffice())
}
