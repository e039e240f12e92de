package projections

import (
	"errors"
	"time"

	"klusmarkt/internal/domain/entities"
	"klusmarkt/internal/domain/money"
)

// InstallmentInterval is the calendar-approximate spacing between due dates.
// It is not a true month boundary.
const InstallmentInterval = 30 * 24 * time.Hour

var ErrInvalidSchedule = errors.New("installments: invalid schedule request")

// InstallmentSchedule splits total into n parts of equal whole currency units;
// the last part absorbs the remainder (cents included) so the parts sum to total
// exactly. Part k is due 30×k days after from.
//
// The base part is floored rather than ceiled: ceiling leaves the last part
// short (1000/3 would give 334, 334, 332), flooring gives 333, 333, 334.
// A total below n whole units yields zero-amount leading parts.
func InstallmentSchedule(total money.Amount, n int, from time.Time) ([]entities.Installment, error) {
	if n < 1 || total < 0 {
		return nil, ErrInvalidSchedule
	}
	base := money.FromMajor(total.Major() / int64(n))
	start := dateOnly(from)

	out := make([]entities.Installment, 0, n)
	var allocated money.Amount
	for k := 1; k <= n; k++ {
		amount := base
		if k == n {
			amount = total - allocated
		}
		allocated += amount
		out = append(out, entities.Installment{
			Number:  k,
			Amount:  amount,
			DueDate: start.AddDate(0, 0, 30*k).Format(DateLayout),
		})
	}
	return out, nil
}
