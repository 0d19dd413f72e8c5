package postgres

import (
	"context"

	"github.com/wfca-mz/fire-widget/internal/domain"
)

type FireRepository interface {
	ListActive(ctx context.Context, q domain.FireQuery) ([]domain.FireRow, error)
}

func (p *Postgres) Fires() FireRepository { return p.Fire }
