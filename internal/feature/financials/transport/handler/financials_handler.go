// Package handler provides the HTTP handlers for the financials feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/financials/domain/entity"
	"stock_dashboard/internal/feature/financials/transport/http/dto"
	"stock_dashboard/internal/shared/format"
)

// FinancialsUsecase defines the statement operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler).
type FinancialsUsecase interface {
	GetStatements(ctx context.Context, symbol string) (*entity.Statements, error)
}

// FinancialsHandler handles HTTP requests for quarterly statements.
type FinancialsHandler struct {
	uc FinancialsUsecase
}

// NewFinancialsHandler creates a new FinancialsHandler with the given
// usecase.
func NewFinancialsHandler(uc FinancialsUsecase) *FinancialsHandler {
	return &FinancialsHandler{uc: uc}
}

// Statements returns the last eight quarters of income, balance and cash
// flow statements for a symbol.
//
// GET /api/financials/:symbol
func (h *FinancialsHandler) Statements(c *gin.Context) {
	statements, err := h.uc.GetStatements(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch financials", "details": err.Error()})
		return
	}

	out := dto.FinancialsResponse{
		Income:   make([]dto.IncomeItem, 0, len(statements.Income)),
		Balance:  make([]dto.BalanceItem, 0, len(statements.Balance)),
		Cashflow: make([]dto.CashflowItem, 0, len(statements.Cashflow)),
	}
	for _, s := range statements.Income {
		out.Income = append(out.Income, dto.IncomeItem{
			Symbol:          s.Symbol,
			FiscalDate:      format.DateKey(s.FiscalDate),
			TotalRevenue:    s.TotalRevenue,
			GrossProfit:     s.GrossProfit,
			OperatingIncome: s.OperatingIncome,
			NetIncome:       s.NetIncome,
		})
	}
	for _, s := range statements.Balance {
		out.Balance = append(out.Balance, dto.BalanceItem{
			Symbol:             s.Symbol,
			FiscalDate:         format.DateKey(s.FiscalDate),
			TotalAssets:        s.TotalAssets,
			TotalLiabilities:   s.TotalLiabilities,
			TotalEquity:        s.TotalEquity,
			CashAndEquivalents: s.CashAndEquivalents,
		})
	}
	for _, s := range statements.Cashflow {
		out.Cashflow = append(out.Cashflow, dto.CashflowItem{
			Symbol:            s.Symbol,
			FiscalDate:        format.DateKey(s.FiscalDate),
			OperatingCashflow: s.OperatingCashflow,
			InvestingCashflow: s.InvestingCashflow,
			FinancingCashflow: s.FinancingCashflow,
			FreeCashflow:      s.FreeCashflow,
		})
	}
	c.JSON(http.StatusOK, out)
}
