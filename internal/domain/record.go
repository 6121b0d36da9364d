// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money representa valores monetários exatos. Nunca converter para float64 no meio das somas.
type Money = decimal.Decimal

type Kind string

const (
	KindSale     Kind = "sale"
	KindOrder    Kind = "order"
	KindDelivery Kind = "delivery"
)

// Kinds lista os tipos de registro conhecidos, em ordem estável
var Kinds = []Kind{KindSale, KindOrder, KindDelivery}

func (k Kind) Valid() bool {
	switch k {
	case KindSale, KindOrder, KindDelivery:
		return true
	}
	return false
}

// Status é o status normalizado de um registro. O domínio válido depende do Kind.
type Status string

const (
	// Venda
	StatusFinalized Status = "finalized"

	// Pedido
	StatusOrdered  Status = "ordered"
	StatusFinished Status = "finished"

	// Entrega
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"

	// Pedido e entrega
	StatusCancelled Status = "cancelled"
)

type StatusCategory string

const (
	CategoryPending   StatusCategory = "pending"
	CategoryActive    StatusCategory = "active"
	CategoryCompleted StatusCategory = "completed"
	CategoryCancelled StatusCategory = "cancelled"
)

// TransactionRecord é a forma única de venda, pedido e entrega consumida pelo motor de análise.
// Registros são somente leitura: pertencem à camada de persistência.
type TransactionRecord struct {
	ID                 string
	Kind               Kind
	Status             Status
	GrossAmount        Money
	CounterpartyPayout Money // Apenas entregas (taxa do entregador); zero nos demais tipos
	Timestamp          time.Time
	EntityRef          *string // Entregador (entregas) ou produto (itens de venda)
}

// HasEntity indica se o registro pertence a alguma entidade (entregador ou produto)
func (r TransactionRecord) HasEntity() bool {
	return r.EntityRef != nil && *r.EntityRef != ""
}

// Classification é o resultado da classificação de um registro
type Classification struct {
	Category StatusCategory
	Gross    Money
	Payout   Money
	Margin   Money // Pode ser negativa; não é ajustada
}
