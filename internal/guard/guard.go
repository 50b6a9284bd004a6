// Package guard decides mutation rights over marketplace resources.
package guard

import (
	"github.com/vansh9528/dealstash/models"
)

// CanModifyProduct reports whether the acting identity's company may edit
// or delete the product. A nil company (identity with no linked company)
// always denies; callers should steer such users to seller signup rather
// than fail hard. Staff deletion does not go through this check.
func CanModifyProduct(company *models.Company, product *models.Product) bool {
	if company == nil || product == nil {
		return false
	}
	return company.ID == product.CompanyID
}
