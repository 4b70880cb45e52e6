package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ByLang(ctx context.Context, in ByLangInput) ([]ByLangRow, error)
	Daily(ctx context.Context, in DailyInput) ([]DailyRow, error)
}
