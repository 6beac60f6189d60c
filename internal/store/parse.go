package store

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// maxMoney is the largest amount a decimal(12,2) column holds.
var maxMoney = decimal.RequireFromString("9999999999.99")

// ParseID parses a record id typed by the operator.
func ParseID(field, s string) (uint, error) {
	value := strings.TrimSpace(s)
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: value, Reason: "not a record id"}
	}
	return uint(id), nil
}

// ParseMoney parses a non-negative amount with at most two decimal places
// that fits the money columns.
func ParseMoney(field, s string) (decimal.Decimal, error) {
	value := strings.TrimSpace(s)
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Value: value, Reason: "not a decimal amount"}
	}
	if err := checkMoney(field, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ParseHours parses a non-negative whole number of hours.
func ParseHours(field, s string) (int, error) {
	value := strings.TrimSpace(s)
	hours, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: value, Reason: "not a whole number"}
	}
	if hours < 0 {
		return 0, &ValidationError{Field: field, Value: value, Reason: "must not be negative"}
	}
	return hours, nil
}

func checkMoney(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &ValidationError{Field: field, Value: amount.String(), Reason: "must not be negative"}
	}
	if !amount.Equal(amount.Round(moneyScale)) {
		return &ValidationError{Field: field, Value: amount.String(), Reason: "more than two decimal places"}
	}
	if amount.GreaterThan(maxMoney) {
		return &ValidationError{Field: field, Value: amount.String(), Reason: "exceeds the maximum amount"}
	}
	return nil
}
