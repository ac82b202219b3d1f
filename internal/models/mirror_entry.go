package models

import (
	"time"

	"gorm.io/gorm"
)

// Mirror keys. All of them are removed together at logout.
const (
	MirrorKeyAccounts        = "accounts"
	MirrorKeySelectedAccount = "selectedAccount"
	MirrorKeyTransactions    = "transactions"
	MirrorKeyDailyLimit      = "dailyLimit"
	MirrorKeyAuthToken       = "authToken"
	MirrorKeyCurrentUser     = "currentUser"
	MirrorKeyBeneficiaries   = "beneficiaries"
)

// MirrorKeys lists every key the engine writes
var MirrorKeys = []string{
	MirrorKeyAccounts,
	MirrorKeySelectedAccount,
	MirrorKeyTransactions,
	MirrorKeyDailyLimit,
	MirrorKeyAuthToken,
	MirrorKeyCurrentUser,
	MirrorKeyBeneficiaries,
}

// MirrorEntry is one serialized value of the key-value mirror
type MirrorEntry struct {
	Key       string    `gorm:"column:entry_key;type:varchar(128);primaryKey" json:"key"`
	Value     string    `gorm:"column:entry_value;type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MirrorEntry) TableName() string {
	return "mirror_entries"
}

func (e *MirrorEntry) BeforeSave(tx *gorm.DB) error {
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now()
	}
	return nil
}

// TransactionSnapshot is the mirrored transaction page together with the
// account it was fetched for, so a fallback never mixes accounts.
type TransactionSnapshot struct {
	AccountID    ID            `json:"accountId"`
	Transactions []Transaction `json:"transactions"`
}
