package dto

type CalculateRequest struct {
	Platform        string  `json:"platform" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0,lte=999999"`
	TransactionType string  `json:"transaction_type"`
	Region          string  `json:"region" binding:"omitempty,oneof=domestic international"`
}

type FeeQuery struct {
	Amount          float64 `form:"amount" binding:"required,gt=0,lte=999999"`
	TransactionType string  `form:"transaction_type"`
	Region          string  `form:"region" binding:"omitempty,oneof=domestic international"`
}

type CompareQuery struct {
	PlatformA string  `form:"platform_a" binding:"required"`
	PlatformB string  `form:"platform_b" binding:"required,nefield=PlatformA"`
	Amount    float64 `form:"amount" binding:"omitempty,gt=0,lte=999999"`
}

type QuoteQuery struct {
	Amount float64 `form:"amount" binding:"required,gt=0,lte=999999"`
	Region string  `form:"region" binding:"omitempty,oneof=domestic international"`
}

type ReportQuery struct {
	Amount float64 `form:"amount" binding:"required,gt=0,lte=999999"`
	Region string  `form:"region" binding:"omitempty,oneof=domestic international"`
	Format string  `form:"format" binding:"omitempty,oneof=json html"`
}
