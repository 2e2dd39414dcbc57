package controllers

import (
	"net/http"
	"strconv"

	"go-postgres-optics/config"
	"go-postgres-optics/models"
	"go-postgres-optics/utils"

	"github.com/gin-gonic/gin"
)

type StockInput struct {
	Frame string `json:"frame"`
	Type  string `json:"type"`
	Count string `json:"count"`
	Date  string `json:"date"`
}

func GetAllStocks(c *gin.Context) {
	var stocks []models.Stock
	if err := config.DB.Order("no ASC").Find(&stocks).Error; err != nil {
		respondDBError(c, "Failed to load stocks", err)
		return
	}
	utils.Success(c, "Stocks loaded", stocks)
}

func AddStock(c *gin.Context) {
	var in StockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if in.Frame == "" || in.Type == "" || !isDigits(in.Count) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter valid Frame, Type, and numeric Count"})
		return
	}
	count, _ := strconv.Atoi(in.Count)

	date, err := parseDate(in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected yyyy-mm-dd"})
		return
	}

	stock := models.Stock{Frame: in.Frame, Type: in.Type, Count: count, Date: date}
	if err := config.DB.Create(&stock).Error; err != nil {
		respondDBError(c, "Failed to add stock", err)
		return
	}

	// Stale frame/type choices must not be offered after a mutation.
	catalog.Invalidate()

	utils.Success(c, "Stock added successfully", stock)
}

func UpdateStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var in StockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if in.Frame == "" || in.Type == "" || !isDigits(in.Count) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter valid Frame, Type, and numeric Count"})
		return
	}
	count, _ := strconv.Atoi(in.Count)

	date, err := parseDate(in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected yyyy-mm-dd"})
		return
	}

	res := config.DB.Model(&models.Stock{}).Where("no = ?", id).Updates(map[string]any{
		"frame": in.Frame,
		"type":  in.Type,
		"count": count,
		"date":  date,
	})
	if res.Error != nil {
		respondDBError(c, "Failed to update stock", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock record not found"})
		return
	}

	catalog.Invalidate()

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}
