package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	QuotationNumberPrefix = "QT"
	InvoiceNumberPrefix   = "INV"

	documentSuffixLength = 6
)

// NewDocumentNumber формирует номер документа вида PREFIX-YYYYMMDD-XXXXXX
// Суффикс - первые 6 hex символов случайного UUID в верхнем регистре
func NewDocumentNumber(prefix string, now time.Time) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + now.Format("20060102") + "-" + strings.ToUpper(id[:documentSuffixLength])
}
