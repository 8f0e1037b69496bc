package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/bankimport"
	"github.com/finance-tracker/ledger/internal/application/usecase/ordering"
)

// ReorderRequest represents the request body for moving an item of an ordered list.
type ReorderRequest struct {
	Entity string `json:"entity" binding:"required,oneof=accounts categories category_groups payees"`
	From   *int   `json:"from" binding:"required,min=0"`
	To     *int   `json:"to" binding:"required,min=0"`
}

// ReorderResponse reports how many items received a new order key.
type ReorderResponse struct {
	Changed int `json:"changed"`
}

// BankRecordRequest is one booked or pending record from a bank feed.
// Amount is signed in major units: negative for outflows.
type BankRecordRequest struct {
	AccountExternalID   string          `json:"account_external_id" binding:"required"`
	BookedDate          string          `json:"booked_date" binding:"required"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency" binding:"required,len=3"`
	DisplayDescription  string          `json:"display_description"`
	OriginalDescription string          `json:"original_description"`
	ProviderID          string          `json:"provider_id"`
	Status              string          `json:"status"`
}

// BankImportRequest represents the request body for a bank feed import.
type BankImportRequest struct {
	Records []BankRecordRequest `json:"records" binding:"required,dive"`
}

// BankImportResponse reports the outcome of a bank feed import.
type BankImportResponse struct {
	Imported     int                   `json:"imported"`
	Duplicates   int                   `json:"duplicates"`
	OutOfWindow  int                   `json:"out_of_window"`
	Rejected     int                   `json:"rejected"`
	Transactions []TransactionResponse `json:"transactions"`
}

// FileImportResponse reports the outcome of a TSV upload.
type FileImportResponse struct {
	Imported      int `json:"imported"`
	PayeesCreated int `json:"payees_created,omitempty"`
}

// ToReorderInput converts a ReorderRequest to the use case input.
func ToReorderInput(req ReorderRequest) ordering.ReorderInput {
	return ordering.ReorderInput{
		Entity: ordering.EntityType(req.Entity),
		From:   *req.From,
		To:     *req.To,
	}
}

// ToBankImportInput converts a BankImportRequest to the use case input.
func ToBankImportInput(req BankImportRequest) bankimport.ImportInput {
	records := make([]bankimport.Record, len(req.Records))
	for i, r := range req.Records {
		records[i] = bankimport.Record{
			AccountExternalID:   r.AccountExternalID,
			BookedDate:          r.BookedDate,
			Amount:              r.Amount,
			Currency:            r.Currency,
			DisplayDescription:  r.DisplayDescription,
			OriginalDescription: r.OriginalDescription,
			ProviderID:          r.ProviderID,
			Status:              r.Status,
		}
	}
	return bankimport.ImportInput{Records: records}
}
