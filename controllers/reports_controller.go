package controllers

import (
	"go-postgres-optics/config"
	"go-postgres-optics/models"
	"go-postgres-optics/service"
	"go-postgres-optics/utils"

	"github.com/gin-gonic/gin"
)

func fetchSaleRows() ([]service.SaleRow, error) {
	var rows []service.SaleRow
	err := config.DB.Model(&models.Customer{}).
		Select("order_date", "total_amount").
		Find(&rows).Error
	return rows, err
}

// GET .../reports/sales/daily
func ReportDailySales(c *gin.Context) {
	rows, err := fetchSaleRows()
	if err != nil {
		respondDBError(c, "Failed to load sales data", err)
		return
	}

	daily, _ := service.AggregateSales(rows, nowFn())
	utils.Success(c, "Daily sales report", daily)
}

// GET .../reports/sales/monthly
func ReportMonthlySales(c *gin.Context) {
	rows, err := fetchSaleRows()
	if err != nil {
		respondDBError(c, "Failed to load sales data", err)
		return
	}

	_, monthly := service.AggregateSales(rows, nowFn())
	utils.Success(c, "Monthly sales report", monthly)
}
