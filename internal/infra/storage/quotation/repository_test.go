package quotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

func TestUpdateStatusQuery(t *testing.T) {
	at := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	query, args, err := updateStatusQuery(7,
		[]domain.QuotationStatus{domain.QuotationDraft, domain.QuotationSent},
		domain.QuotationSent, at)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE quotations SET status = $1, updated_at = $2, sent_at = $3 WHERE id = $4 AND status IN ($5,$6)",
		query)
	assert.Equal(t, []interface{}{"sent", at, at, int64(7), "draft", "sent"}, args)
}

func TestUpdateStatusQuery_NoSentAtForOtherStatuses(t *testing.T) {
	at := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	query, args, err := updateStatusQuery(3, []domain.QuotationStatus{domain.QuotationViewed}, domain.QuotationAccepted, at)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE quotations SET status = $1, updated_at = $2 WHERE id = $3 AND status IN ($4)", query)
	assert.Equal(t, []interface{}{"accepted", at, int64(3), "viewed"}, args)

	_, _, err = updateStatusQuery(3, nil, domain.QuotationAccepted, at)
	assert.Error(t, err)
}
