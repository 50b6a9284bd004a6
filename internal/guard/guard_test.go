package guard

import (
	"testing"

	"github.com/vansh9528/dealstash/models"
)

func TestCanModifyProduct_NoLinkedCompany(t *testing.T) {
	product := &models.Product{ID: 1, CompanyID: 10}

	if CanModifyProduct(nil, product) {
		t.Error("Expected false for identity with no linked company")
	}
}

func TestCanModifyProduct_Owner(t *testing.T) {
	company := &models.Company{ID: 10}
	owned := &models.Product{ID: 1, CompanyID: 10}
	foreign := &models.Product{ID: 2, CompanyID: 20}

	if !CanModifyProduct(company, owned) {
		t.Error("Expected true for the owning company")
	}
	if CanModifyProduct(company, foreign) {
		t.Error("Expected false for another company's product")
	}
}

func TestCanModifyProduct_NilProduct(t *testing.T) {
	company := &models.Company{ID: 10}

	if CanModifyProduct(company, nil) {
		t.Error("Expected false for nil product")
	}
}
