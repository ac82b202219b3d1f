package models

import (
	"errors"
	"strings"
)

var ErrBeneficiaryAccountRequired = errors.New("beneficiary account number is required")

// Beneficiary is a saved transfer destination of a user
type Beneficiary struct {
	ID            ID     `json:"id"`
	UserID        ID     `json:"userId"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName,omitempty"`
	Nickname      string `json:"nickname,omitempty"`
}

func (b *Beneficiary) Validate() error {
	if strings.TrimSpace(b.AccountNumber) == "" {
		return ErrBeneficiaryAccountRequired
	}

	if strings.TrimSpace(b.AccountName) == "" {
		return errors.New("beneficiary account name is required")
	}

	return nil
}

// Label is what a transfer form shows for the beneficiary
func (b *Beneficiary) Label() string {
	if b.Nickname != "" {
		return b.Nickname
	}
	return b.AccountName
}
