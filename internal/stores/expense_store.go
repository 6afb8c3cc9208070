package stores

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"idrive/internal/config"
	"idrive/internal/models"
)

type ExpenseFilter struct {
	ID             string
	OrganizationID string
	DriverID       string
}

func (f ExpenseFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ID != "" {
		db = db.Where("id = ?", f.ID)
	}
	if f.OrganizationID != "" {
		db = db.Where("organization_id = ?", f.OrganizationID)
	}
	if f.DriverID != "" {
		db = db.Where("driver_id = ?", f.DriverID)
	}
	return db
}

func ExpensesByFilter(f ExpenseFilter) ([]models.Expense, error) {
	var expenses []models.Expense
	err := f.apply(config.GetDB().Model(&models.Expense{})).Find(&expenses).Error
	return expenses, err
}

// ExpenseDetailsByFilter also loads the driver who recorded each expense.
func ExpenseDetailsByFilter(f ExpenseFilter) ([]models.Expense, error) {
	var expenses []models.Expense
	err := f.apply(config.GetDB().Model(&models.Expense{}).Preload("Driver")).Find(&expenses).Error
	return expenses, err
}

func CreateExpense(expense *models.Expense) error {
	return config.GetDB().Create(expense).Error
}

func UpdateExpenseByFilter(f ExpenseFilter, changes map[string]interface{}) (*models.Expense, error) {
	if len(changes) == 0 {
		expenses, err := ExpensesByFilter(f)
		if err != nil || len(expenses) == 0 {
			return nil, err
		}
		return &expenses[0], nil
	}
	var expense models.Expense
	res := f.apply(config.GetDB().Model(&expense)).Clauses(clause.Returning{}).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &expense, nil
}
