package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-analytics-api/internal/domain"
)

// categoriesByKind mapeia os status de cada tipo para a categoria comum
var categoriesByKind = map[domain.Kind]map[domain.Status]domain.StatusCategory{
	domain.KindSale: {
		domain.StatusFinalized: domain.CategoryCompleted,
	},
	domain.KindOrder: {
		domain.StatusOrdered:   domain.CategoryPending,
		domain.StatusFinished:  domain.CategoryCompleted,
		domain.StatusCancelled: domain.CategoryCancelled,
	},
	domain.KindDelivery: {
		domain.StatusPending:    domain.CategoryPending,
		domain.StatusInProgress: domain.CategoryActive,
		domain.StatusCompleted:  domain.CategoryCompleted,
		domain.StatusCancelled:  domain.CategoryCancelled,
	},
}

// Classify determina a categoria de status e os componentes monetários de um registro.
// A margem não é limitada a zero: margem negativa indica anomalia de preço e deve aparecer.
func Classify(record domain.TransactionRecord) (domain.Classification, error) {
	categories, ok := categoriesByKind[record.Kind]
	if !ok {
		return domain.Classification{}, &domain.UnsupportedKindError{RecordID: record.ID, Kind: record.Kind, Status: record.Status}
	}

	category, ok := categories[record.Status]
	if !ok {
		return domain.Classification{}, &domain.UnsupportedKindError{RecordID: record.ID, Kind: record.Kind, Status: record.Status}
	}

	if record.GrossAmount.IsNegative() {
		return domain.Classification{}, &domain.InvalidAmountError{RecordID: record.ID, Field: "gross_amount", Amount: record.GrossAmount}
	}

	payout := decimal.Zero
	if record.Kind == domain.KindDelivery {
		if record.CounterpartyPayout.IsNegative() {
			return domain.Classification{}, &domain.InvalidAmountError{RecordID: record.ID, Field: "counterparty_payout", Amount: record.CounterpartyPayout}
		}
		payout = record.CounterpartyPayout
	}

	return domain.Classification{
		Category: category,
		Gross:    record.GrossAmount,
		Payout:   payout,
		Margin:   record.GrossAmount.Sub(payout),
	}, nil
}
