package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"go-postgres-optics/config"
	"go-postgres-optics/models"
	"go-postgres-optics/service"
	"go-postgres-optics/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Amounts and prescription numbers arrive as raw form strings; anything
// unreadable counts as zero, the validator decides what is acceptable.
type PrescriptionInput struct {
	ReSph  string `json:"re_sph"`
	ReCyl  string `json:"re_cyl"`
	ReAxis string `json:"re_axis"`
	LeSph  string `json:"le_sph"`
	LeCyl  string `json:"le_cyl"`
	LeAxis string `json:"le_axis"`
}

type OrderInput struct {
	Name          string            `json:"name"`
	PhoneNo       string            `json:"phone_no"`
	BillNo        string            `json:"bill_no"`
	OrderDate     string            `json:"order_date"`
	DOB           string            `json:"dob"`
	Frame         string            `json:"frame"`
	Type          string            `json:"type"`
	Lens          string            `json:"lens"`
	UniqueNo      string            `json:"unique_no"`
	Remark        string            `json:"remark"`
	TotalAmount   string            `json:"total_amount"`
	Discount      string            `json:"discount"`
	AdvanceAmount string            `json:"advance_amount"`
	Distance      PrescriptionInput `json:"distance"`
	Reading       PrescriptionInput `json:"reading"`
}

func CreateCustomer(c *gin.Context) {
	var in OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	total := service.ParseAmount(in.TotalAmount)
	discount := service.ParseAmount(in.Discount)
	advance := service.ParseAmount(in.AdvanceAmount)

	if verr := service.ValidateOrder(service.OrderForm{
		Name:     in.Name,
		PhoneNo:  in.PhoneNo,
		BillNo:   in.BillNo,
		Frame:    in.Frame,
		Type:     in.Type,
		Lens:     in.Lens,
		UniqueNo: in.UniqueNo,
		Remark:   in.Remark,
		Total:    total,
		Discount: discount,
		Advance:  advance,
	}); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message, "kind": verr.Kind})
		return
	}

	orderDate, err := parseDate(in.OrderDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_date, expected yyyy-mm-dd"})
		return
	}
	dob, err := parseDate(in.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dob, expected yyyy-mm-dd"})
		return
	}

	bill := service.ComputeBilling(total, discount, advance)

	cust := models.Customer{
		Name:          in.Name,
		PhoneNo:       in.PhoneNo,
		BillNo:        in.BillNo,
		OrderDate:     orderDate,
		DOB:           dob,
		Frame:         in.Frame,
		Type:          in.Type,
		TotalAmount:   total,
		Discount:      discount,
		AdvanceAmount: advance,
		BalanceAmount: bill.Balance,
		Lens:          in.Lens,
		Payment:       bill.Payment,
		Remark:        in.Remark,
	}
	dist := prescriptionFromInput(models.EyeDistance, in.Distance)
	read := prescriptionFromInput(models.EyeReading, in.Reading)
	tag := models.SpectacleNo{Frame: in.Frame, Type: in.Type, UniqueNo: in.UniqueNo}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		return createCustomerCore(tx, &cust, &dist, &read, &tag)
	})
	if err != nil {
		respondDBError(c, "Failed to insert customer data", err)
		return
	}

	// A consumed frame/type may have gone out of stock since the last read.
	catalog.Invalidate()

	utils.Created(c, "Customer data inserted successfully", gin.H{"customer_id": cust.ID})
}

// createCustomerCore persists the four-row unit in its fixed order: customer
// first so the generated id is available to the child rows. Runs inside one
// transaction, so any failure rolls back the earlier inserts.
func createCustomerCore(tx *gorm.DB, cust *models.Customer, dist, read *models.EyePrescription, tag *models.SpectacleNo) error {
	if err := tx.Create(cust).Error; err != nil {
		return err
	}

	dist.CustomerID = cust.ID
	if err := tx.Create(dist).Error; err != nil {
		return err
	}

	read.CustomerID = cust.ID
	if err := tx.Create(read).Error; err != nil {
		return err
	}

	tag.CustomerID = cust.ID
	return tx.Create(tag).Error
}

func prescriptionFromInput(eyeType string, in PrescriptionInput) models.EyePrescription {
	return models.EyePrescription{
		EyeType: eyeType,
		ReSph:   service.ParseAmount(in.ReSph),
		ReCyl:   service.ParseAmount(in.ReCyl),
		ReAxis:  service.ParseAmount(in.ReAxis),
		LeSph:   service.ParseAmount(in.LeSph),
		LeCyl:   service.ParseAmount(in.LeCyl),
		LeAxis:  service.ParseAmount(in.LeAxis),
	}
}

type unpaidRow struct {
	BillNo        string  `json:"bill_no"`
	Name          string  `json:"name"`
	PhoneNo       string  `json:"phone_no"`
	BalanceAmount float64 `json:"balance_amount"`
}

// GetUnpaidCustomers feeds the outstanding-balance table; the client polls it.
func GetUnpaidCustomers(c *gin.Context) {
	var rows []unpaidRow
	if err := config.DB.Model(&models.Customer{}).
		Where("payment = ?", models.PaymentNotPaid).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		respondDBError(c, "Failed to load unpaid customers", err)
		return
	}
	utils.Success(c, "Unpaid customers loaded", rows)
}

type SettleInput struct {
	BillNo string `json:"bill_no" binding:"required"`
}

// SettleBalance folds the outstanding balance into the advance and marks the
// bill Paid. Settling an already-Paid bill is a no-op, not an error.
func SettleBalance(c *gin.Context) {
	var in SettleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bill_no is required"})
		return
	}

	var alreadyPaid bool
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var cust models.Customer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("bill_no = ?", in.BillNo).
			First(&cust).Error; err != nil {
			return err
		}

		s, changed := service.SettleOrder(cust.AdvanceAmount, cust.BalanceAmount, cust.Payment)
		if !changed {
			alreadyPaid = true
			return nil
		}

		res := tx.Model(&models.Customer{}).
			Where("bill_no = ? AND payment = ?", in.BillNo, models.PaymentNotPaid).
			Updates(map[string]any{
				"advance_amount": s.AdvanceAmount,
				"balance_amount": s.BalanceAmount,
				"payment":        s.Payment,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("settlement update failed")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		respondDBError(c, "Failed to settle balance", err)
		return
	}

	if alreadyPaid {
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Bill No %s is already paid", in.BillNo)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Bill No %s has been marked as Paid", in.BillNo)})
}

type spectacleRow struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	PhoneNo string  `json:"phone_no"`
	BillNo  string  `json:"bill_no"`
	EyeType string  `json:"eye_type"`
	ReSph   float64 `json:"re_sph"`
	ReCyl   float64 `json:"re_cyl"`
	ReAxis  float64 `json:"re_axis"`
	LeSph   float64 `json:"le_sph"`
	LeCyl   float64 `json:"le_cyl"`
	LeAxis  float64 `json:"le_axis"`
}

// SearchSpectacles finds prescription rows by bill number, phone number or
// spectacle unique number. At least one criterion is required.
func SearchSpectacles(c *gin.Context) {
	billNo := c.Query("bill_no")
	phoneNo := c.Query("phone_no")
	uniqueNo := c.Query("unique_no")

	if billNo == "" && phoneNo == "" && uniqueNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter at least one search field"})
		return
	}

	var rows []spectacleRow
	err := config.DB.Raw(`
		SELECT customers.id, customers.name, customers.phone_no, customers.bill_no,
		       eye_prescriptions.eye_type, eye_prescriptions.re_sph, eye_prescriptions.re_cyl,
		       eye_prescriptions.re_axis, eye_prescriptions.le_sph, eye_prescriptions.le_cyl,
		       eye_prescriptions.le_axis
		FROM customers
		LEFT JOIN eye_prescriptions ON customers.id = eye_prescriptions.customer_id
		LEFT JOIN spectacles_no ON customers.id = spectacles_no.customer_id
		WHERE customers.phone_no = ? OR customers.bill_no = ? OR spectacles_no.unique_no = ?`,
		phoneNo, billNo, uniqueNo).Scan(&rows).Error
	if err != nil {
		respondDBError(c, "Failed to search spectacles", err)
		return
	}

	utils.Success(c, "Search results", rows)
}
