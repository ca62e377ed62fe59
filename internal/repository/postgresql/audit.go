package postgresql

import (
	"context"
	"strings"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Record implements audit.AuditRepository.
func (r *auditRepositoryImpl) Record(ctx context.Context, e audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO audit_logs (company_id, account_id, action, entity, entity_id, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.CompanyID, e.AccountID, e.Action, e.Entity, e.EntityID, e.Detail)
	return err
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context, companyID string, filter audit.ListFilter) ([]audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		where = append(where, "account_id = $"+itoa(len(args)))
	}
	if filter.Entity != nil {
		args = append(args, *filter.Entity)
		where = append(where, "entity = $"+itoa(len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs WHERE `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := itoa(len(args))
	args = append(args, filter.Offset)
	offsetPos := itoa(len(args))

	query := `
		SELECT id, company_id, account_id, action, entity, entity_id, detail, created_at
		FROM audit_logs
		WHERE ` + whereClause + `
		ORDER BY created_at DESC
		LIMIT $` + limitPos + ` OFFSET $` + offsetPos
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(
			&e.ID,
			&e.CompanyID,
			&e.AccountID,
			&e.Action,
			&e.Entity,
			&e.EntityID,
			&e.Detail,
			&e.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
