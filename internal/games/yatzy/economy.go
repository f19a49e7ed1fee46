package yatzy

import "fmt"

// Default economy values.
const (
	DefaultFreeRerolls  = 2
	DefaultRerollCost   = 10
	DefaultStartingGems = 20
)

// Policy prices re-rolls.
type Policy struct {
	// FreeRerolls is the number of re-rolls after the first roll that cost nothing.
	FreeRerolls int
	// RerollCost is the gem price of every further re-roll.
	RerollCost int
}

// DefaultPolicy returns two free re-rolls and 10 gems per paid re-roll.
func DefaultPolicy() Policy {
	return Policy{FreeRerolls: DefaultFreeRerolls, RerollCost: DefaultRerollCost}
}

// IsPaid reports whether the next roll is paid, given rolls already made this turn.
func (p Policy) IsPaid(rollCount int) bool {
	return rollCount > p.FreeRerolls
}

// CanAffordReroll reports whether balance covers one paid re-roll.
func (p Policy) CanAffordReroll(balance int) bool {
	return balance >= p.RerollCost
}

// Spend deducts amount from balance. Negative amounts are rejected.
func Spend(balance, amount int) (int, error) {
	if amount < 0 {
		return balance, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if amount > balance {
		return balance, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, amount, balance)
	}
	return floorZero(balance - amount), nil
}

// Credit adds amount to balance. The result is floored at zero.
func Credit(balance, amount int) int {
	return floorZero(balance + amount)
}

func floorZero(n int) int {
	return max(0, n)
}

// Economy owns the session's gem balance.
type Economy struct {
	policy  Policy
	balance int
}

// NewEconomy creates an economy with the given policy and starting balance.
func NewEconomy(policy Policy, balance int) *Economy {
	return &Economy{policy: policy, balance: floorZero(balance)}
}

// Policy returns the pricing policy.
func (e *Economy) Policy() Policy {
	return e.policy
}

// Balance returns the current gem balance.
func (e *Economy) Balance() int {
	return e.balance
}

// CanAffordReroll reports whether the balance covers one paid re-roll.
func (e *Economy) CanAffordReroll() bool {
	return e.policy.CanAffordReroll(e.balance)
}

// Spend deducts amount, failing without change if the balance is short.
func (e *Economy) Spend(amount int) error {
	b, err := Spend(e.balance, amount)
	if err != nil {
		return err
	}
	e.balance = b
	return nil
}

// Credit adds amount to the balance.
func (e *Economy) Credit(amount int) {
	e.balance = Credit(e.balance, amount)
}
