package domain

import (
	"fmt"
	"strings"
)

// StatusCatalog normaliza os literais de status persistidos para os status conhecidos.
// Literais desconhecidos passam sem alteração; o classificador os reporta como anomalia.
type StatusCatalog struct {
	aliases map[Kind]map[string]Status
}

func NewStatusCatalog() *StatusCatalog {
	c := &StatusCatalog{aliases: make(map[Kind]map[string]Status)}

	c.add(KindSale, string(StatusFinalized), StatusFinalized)
	c.add(KindOrder, string(StatusOrdered), StatusOrdered)
	c.add(KindOrder, string(StatusFinished), StatusFinished)
	c.add(KindOrder, string(StatusCancelled), StatusCancelled)
	c.add(KindDelivery, string(StatusPending), StatusPending)
	c.add(KindDelivery, string(StatusInProgress), StatusInProgress)
	c.add(KindDelivery, string(StatusCompleted), StatusCompleted)
	c.add(KindDelivery, string(StatusCancelled), StatusCancelled)

	return c
}

// WithAliases registra apelidos no formato "kind:literal=status" (ex: "order:finishied=finished")
func (c *StatusCatalog) WithAliases(specs []string) (*StatusCatalog, error) {
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		kindPart, rest, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("apelido de status inválido %q: esperado kind:literal=status", spec)
		}

		raw, target, ok := strings.Cut(rest, "=")
		if !ok || raw == "" || target == "" {
			return nil, fmt.Errorf("apelido de status inválido %q: esperado kind:literal=status", spec)
		}

		kind := Kind(strings.TrimSpace(kindPart))
		if !kind.Valid() {
			return nil, fmt.Errorf("apelido de status inválido %q: tipo %q desconhecido", spec, kind)
		}

		status := Status(strings.TrimSpace(target))
		if canonical, known := c.aliases[kind][string(status)]; !known || canonical != status {
			return nil, fmt.Errorf("apelido de status inválido %q: status %q não pertence a %q", spec, status, kind)
		}

		c.add(kind, strings.TrimSpace(raw), status)
	}

	return c, nil
}

func (c *StatusCatalog) add(kind Kind, raw string, status Status) {
	if c.aliases[kind] == nil {
		c.aliases[kind] = make(map[string]Status)
	}
	c.aliases[kind][strings.ToLower(raw)] = status
}

// Normalize converte o literal persistido no status normalizado do tipo
func (c *StatusCatalog) Normalize(kind Kind, raw string) Status {
	if status, ok := c.aliases[kind][strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status
	}
	return Status(raw)
}
