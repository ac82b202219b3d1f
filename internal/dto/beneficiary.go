package dto

// BeneficiaryRequest is the body to save or edit a beneficiary
type BeneficiaryRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,max=34"`
	AccountName   string `json:"accountName" validate:"required,min=1,max=100"`
	BankName      string `json:"bankName" validate:"max=100"`
	Nickname      string `json:"nickname" validate:"max=50"`
}
