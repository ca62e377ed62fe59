package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, int64, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
