package service

type ValidationKind string

const (
	MissingField          ValidationKind = "MISSING_FIELD"
	InvalidPhone          ValidationKind = "INVALID_PHONE"
	MissingRemark         ValidationKind = "MISSING_REMARK"
	NegativeAmount        ValidationKind = "NEGATIVE_AMOUNT"
	DiscountExceedsTotal  ValidationKind = "DISCOUNT_EXCEEDS_TOTAL"
	AdvanceExceedsPayable ValidationKind = "ADVANCE_EXCEEDS_PAYABLE"
)

type ValidationError struct {
	Kind    ValidationKind `json:"kind"`
	Message string         `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// OrderForm carries a candidate order with amounts already parsed.
type OrderForm struct {
	Name     string
	PhoneNo  string
	BillNo   string
	Frame    string
	Type     string
	Lens     string
	UniqueNo string
	Remark   string
	Total    float64
	Discount float64
	Advance  float64
}

// ValidateOrder checks the candidate rule by rule; the first violated rule
// decides the result, so the same bad input always reports the same error.
func ValidateOrder(f OrderForm) *ValidationError {
	if f.Name == "" || f.PhoneNo == "" || f.BillNo == "" || f.Frame == "" ||
		f.Type == "" || f.Lens == "" || f.UniqueNo == "" || f.Total == 0 {
		return &ValidationError{MissingField, "all fields must be filled"}
	}
	if len(f.PhoneNo) != 10 || !allDigits(f.PhoneNo) {
		return &ValidationError{InvalidPhone, "phone number must be exactly 10 digits"}
	}
	if f.Remark == "" {
		return &ValidationError{MissingRemark, "remark must be filled"}
	}
	if f.Total < 0 || f.Discount < 0 || f.Advance < 0 {
		return &ValidationError{NegativeAmount, "amounts cannot be negative"}
	}
	if f.Discount > f.Total {
		return &ValidationError{DiscountExceedsTotal, "discount cannot exceed total amount"}
	}
	if f.Advance > f.Total-f.Discount {
		return &ValidationError{AdvanceExceedsPayable, "advance cannot exceed payable amount"}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
