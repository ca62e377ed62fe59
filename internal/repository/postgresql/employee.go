package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/employee"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

const employeeColumns = `e.id, e.company_id, e.account_id, e.full_name, e.email,
	   e.position, e.department, e.manager_id, e.salary, e.hire_date,
	   e.status, e.created_at, e.updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row, withManager bool) (employee.Employee, error) {
	var e employee.Employee
	dest := []interface{}{
		&e.ID,
		&e.CompanyID,
		&e.AccountID,
		&e.FullName,
		&e.Email,
		&e.Position,
		&e.Department,
		&e.ManagerID,
		&e.Salary,
		&e.HireDate,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
	if withManager {
		dest = append(dest, &e.ManagerName)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, m.full_name
		FROM employees e
		LEFT JOIN employees m ON m.id = e.manager_id
		WHERE e.company_id = $1 AND e.id = $2
	`
	return scanEmployee(q.QueryRow(ctx, query, companyID, id), true)
}

// GetByAccount implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByAccount(ctx context.Context, companyID, accountID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.company_id = $1 AND e.account_id = $2
	`
	return scanEmployee(q.QueryRow(ctx, query, companyID, accountID), false)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, companyID string, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"e.company_id = $1"}
	args := []interface{}{companyID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, "e.status = $"+itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, "(e.full_name ILIKE $"+itoa(len(args))+" OR e.email ILIKE $"+itoa(len(args))+")")
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := itoa(len(args))
	args = append(args, filter.Offset)
	offsetPos := itoa(len(args))

	query := `
		SELECT ` + employeeColumns + `, m.full_name
		FROM employees e
		LEFT JOIN employees m ON m.id = e.manager_id
		WHERE ` + whereClause + `
		ORDER BY e.full_name ASC
		LIMIT $` + limitPos + ` OFFSET $` + offsetPos
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows, true)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			company_id, account_id, full_name, email, position, department,
			manager_id, salary, hire_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + strings.ReplaceAll(employeeColumns, "e.", "") + `
	`
	return scanEmployee(q.QueryRow(ctx, query,
		e.CompanyID,
		e.AccountID,
		e.FullName,
		e.Email,
		e.Position,
		e.Department,
		e.ManagerID,
		e.Salary,
		e.HireDate,
		e.Status,
	), false)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{companyID, id}

	appendSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, col+" = $"+itoa(len(args)))
	}

	if req.FullName != nil {
		appendSet("full_name", *req.FullName)
	}
	if req.Position != nil {
		appendSet("position", *req.Position)
	}
	if req.Department != nil {
		appendSet("department", *req.Department)
	}
	if req.ManagerID != nil {
		appendSet("manager_id", *req.ManagerID)
	}
	if req.ParsedSalary != nil {
		appendSet("salary", *req.ParsedSalary)
	}

	query := `UPDATE employees SET ` + strings.Join(sets, ", ") + ` WHERE company_id = $1 AND id = $2`
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetStatus(ctx context.Context, companyID, id string, status employee.EmploymentStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET status = $1, updated_at = NOW()
		WHERE company_id = $2 AND id = $3
	`, status, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// HasActiveByAccount implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) HasActiveByAccount(ctx context.Context, companyID, accountID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM employees
			WHERE company_id = $1 AND account_id = $2 AND status = 'active'
		)
	`, companyID, accountID).Scan(&exists)
	return exists, err
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, companyID, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM employees
			WHERE company_id = $1 AND LOWER(email) = LOWER($2)
		)
	`, companyID, email).Scan(&exists)
	return exists, err
}
