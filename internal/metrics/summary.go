package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"famfin/internal/models"
)

// Uncategorized is the sentinel label for transactions whose category
// reference does not resolve.
const Uncategorized = "Uncategorized"

// palette is cycled through category groups in first-appearance order.
var palette = []string{"#CCFF00", "#000000", "#9CA3AF"}

// CategorySummary is one slice of the expenses-by-category breakdown.
type CategorySummary struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
	Color      string          `json:"color"`
}

// CategoryResolver maps a category id to its display name. A nil resolver
// sends everything to Uncategorized.
type CategoryResolver func(id string) (string, bool)

// TotalIncome sums non-pending INCOME amounts. Pending transactions are
// obligations, not realized cash flow.
func TotalIncome(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeIncome && !tx.IsPending() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalExpenses sums non-pending EXPENSE amounts.
func TotalExpenses(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeExpense && !tx.IsPending() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// NetBalance is TotalIncome minus TotalExpenses: a flow-based balance over
// the filtered period, not a sum of account balances.
func NetBalance(txs []models.Transaction) decimal.Decimal {
	return TotalIncome(txs).Sub(TotalExpenses(txs))
}

// ExpensesByCategory groups non-pending EXPENSE transactions by resolved
// category name and returns the groups sorted descending by amount, ties
// keeping first-appearance order. Percentages are rounded to the nearest
// integer, 0 when there are no realized expenses.
func ExpensesByCategory(txs []models.Transaction, resolve CategoryResolver) []CategorySummary {
	total := TotalExpenses(txs)

	names := make([]string, 0)
	amounts := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense || tx.IsPending() {
			continue
		}
		name := resolveName(tx.CategoryID, resolve)
		if _, seen := amounts[name]; !seen {
			names = append(names, name)
		}
		amounts[name] = amounts[name].Add(tx.Amount)
	}

	hundred := decimal.NewFromInt(100)
	summaries := make([]CategorySummary, 0, len(names))
	for i, name := range names {
		amount := amounts[name]
		pct := 0
		if total.IsPositive() {
			pct = int(amount.Div(total).Mul(hundred).Round(0).IntPart())
		}
		summaries = append(summaries, CategorySummary{
			Category:   name,
			Amount:     amount,
			Percentage: pct,
			Color:      palette[i%len(palette)],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Amount.GreaterThan(summaries[j].Amount)
	})
	return summaries
}

func resolveName(categoryID *string, resolve CategoryResolver) string {
	if categoryID == nil || resolve == nil {
		return Uncategorized
	}
	name, ok := resolve(*categoryID)
	if !ok {
		return Uncategorized
	}
	return name
}

// UpcomingExpenses returns all PENDING transactions sorted ascending by
// date, earliest due first. Amounts are not filtered.
func UpcomingExpenses(txs []models.Transaction) []models.Transaction {
	upcoming := make([]models.Transaction, 0)
	for _, tx := range txs {
		if tx.IsPending() {
			upcoming = append(upcoming, tx)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	return upcoming
}

// InstallmentValue splits a financed amount into n equal sub-payments,
// rounded to two decimals. Non-positive n returns the full amount.
func InstallmentValue(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return total
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}
