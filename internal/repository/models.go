package repository

import "time"

type Operator struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Transfer struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	From      string `gorm:"size:42;not null;index"`  // sending wallet
	Recipient string `gorm:"size:42;not null;index"`
	Amount    string `gorm:"size:100;not null"` // display decimal as submitted
	AmountRaw string `gorm:"size:100;not null"` // base units
	State     string `gorm:"size:16;not null;index"`
	TxHash    string `gorm:"size:66"`
	Error     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
