package domain

import (
	"math"
	"strings"
)

// DepositSplit разбивка суммы к оплате
type DepositSplit struct {
	Total       float64
	DueNow      float64
	Outstanding float64
}

// IsDeposit returns true if part of the total remains to be paid at the venue
func (s DepositSplit) IsDeposit() bool {
	return s.Outstanding > 0
}

// IsDepositEligible проверяет, требует ли тип сессии предоплату
// Предоплата берётся за сессии famous course и 3/4-ball
func IsDepositEligible(sessionType string, famousCourseOption *string) bool {
	session := strings.ToLower(sessionType)
	if strings.Contains(session, "famous") || strings.Contains(session, "ball") {
		return true
	}
	if famousCourseOption != nil && strings.Contains(strings.ToLower(*famousCourseOption), "ball") {
		return true
	}
	return false
}

// CalculateDeposit returns the amount due now and the outstanding balance.
// For eligible sessions the amount due is ceil(total*percent/100) unless payFull is set.
func CalculateDeposit(total float64, percent int, eligible bool, payFull bool) DepositSplit {
	dueNow := total
	if eligible && !payFull {
		// процент целый: 0.4 не представимо точно в float64
		dueNow = math.Ceil(total * float64(percent) / 100)
		if dueNow > total {
			dueNow = total
		}
	}

	return DepositSplit{
		Total:       total,
		DueNow:      dueNow,
		Outstanding: total - dueNow,
	}
}
