package sqlstore

import (
	"time"

	"github.com/shopspring/decimal"
)

type routeModel struct {
	OutletCode    string    `gorm:"primaryKey;type:varchar(64)"`
	DayOfWeek     *int      `gorm:"type:smallint"`
	DaysOfWeek    IntArray  `gorm:"type:integer[]"`
	ScheduleDays  IntArray  `gorm:"type:integer[]"`
	OperatorEmail string    `gorm:"type:varchar(254);not null;default:'';index"`
	Frequency     string    `gorm:"type:varchar(32);not null;default:''"`
	WeekCode      string    `gorm:"type:varchar(64);not null;default:''"`
	Priority      int       `gorm:"not null;default:0"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (routeModel) TableName() string { return "routes" }

type outletModel struct {
	Code         string          `gorm:"primaryKey;type:varchar(64)"`
	Name         string          `gorm:"type:varchar(255);not null;default:''"`
	City         string          `gorm:"type:varchar(128);not null;default:''"`
	INN          string          `gorm:"column:inn;type:varchar(16);not null;default:''"`
	Address      string          `gorm:"type:text;not null;default:''"`
	PaymentTerms string          `gorm:"type:varchar(128);not null;default:''"`
	Direction    string          `gorm:"type:varchar(128);not null;default:''"`
	CreditLimit  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Debt         decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
}

func (outletModel) TableName() string { return "outlets" }

type visitModel struct {
	ID            string          `gorm:"primaryKey;type:varchar(64)"`
	PlannedDate   string          `gorm:"type:varchar(10);not null;index:idx_visits_date_outlet"`
	PlannedAt     time.Time       `gorm:"not null"`
	OutletCode    string          `gorm:"type:varchar(64);not null;index:idx_visits_date_outlet"`
	OutletName    string          `gorm:"type:varchar(255);not null;default:''"`
	INN           string          `gorm:"column:inn;type:varchar(16);not null;default:''"`
	Address       string          `gorm:"type:text;not null;default:''"`
	PaymentTerms  string          `gorm:"type:varchar(128);not null;default:''"`
	Direction     string          `gorm:"type:varchar(128);not null;default:''"`
	CreditLimit   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Debt          decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Status        string          `gorm:"type:varchar(32);not null;index"`
	Type          string          `gorm:"type:varchar(32);not null"`
	OperatorEmail string          `gorm:"type:varchar(254);not null;default:'';index"`
	Priority      int             `gorm:"not null;default:3"`
	CreatedAt     time.Time       `gorm:"not null"`
}

func (visitModel) TableName() string { return "planned_visits" }

type settingModel struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (settingModel) TableName() string { return "settings" }
