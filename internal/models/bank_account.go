package models

// BankAccount is the stored account record. ID is assigned by the database on insert.
type BankAccount struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"column:name;type:text" json:"name"`
	Number string `gorm:"column:number;type:text" json:"number"`
	Owner  string `gorm:"column:owner;type:text" json:"owner"`
}

// TableName overrides the table name used by gorm
func (BankAccount) TableName() string {
	return "bank_accounts"
}

// IsPersisted reports whether the record has been assigned an identity by the store
func (a *BankAccount) IsPersisted() bool {
	return a.ID > 0
}
