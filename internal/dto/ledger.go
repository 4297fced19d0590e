package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// LedgerLineResponse is one timeline row of the vendor ledger as rendered by
// the mobile client.
type LedgerLineResponse struct {
	SourceID   string          `json:"sourceID"`
	LedgerType string          `json:"ledgerType"` // Purchase | Payment | Adjustment
	Date       time.Time       `json:"date"`
	Value      decimal.Decimal `json:"value"` // Unsigned magnitude
	ItemName   string          `json:"itemName,omitempty"`
	PhotoURL   string          `json:"photoUrl,omitempty"`
	Comment    string          `json:"comment,omitempty"`
}

// LedgerResponse is the computed ledger for one (vendor, branch) pair.
type LedgerResponse struct {
	Balance decimal.Decimal      `json:"balance"`
	Ledger  []LedgerLineResponse `json:"ledger"`
}

// ToLedgerResponse converts a domain ledger result to its response DTO.
func ToLedgerResponse(result domain.LedgerResult) LedgerResponse {
	lines := make([]LedgerLineResponse, len(result.Ledger))
	for i, line := range result.Ledger {
		lines[i] = LedgerLineResponse{
			SourceID:   line.SourceID,
			LedgerType: string(line.Type),
			Date:       line.Date,
			Value:      line.Value,
			ItemName:   line.ItemName,
			PhotoURL:   line.PhotoURL,
			Comment:    line.Comment,
		}
	}
	return LedgerResponse{Balance: result.Balance, Ledger: lines}
}
