package service

import (
	"errors"
	"testing"

	"github.com/vansh9528/dealstash/models"
	"github.com/vansh9528/dealstash/utils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AccountServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *AccountService
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.svc = NewAccountService(s.db)
}

func validSignup() SignupInput {
	return SignupInput{
		Username:        "alice",
		Email:           "alice@x.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
		CompanyName:     "Alice Co",
		Website:         "https://alice.example.com",
	}
}

func (s *AccountServiceTestSuite) TestSignupSellerCreatesUserAndCompany() {
	user, company, err := s.svc.SignupSeller(validSignup())
	s.Require().NoError(err)

	s.Equal("alice", user.Username)
	s.Equal(models.RoleUser, user.Role)
	s.True(utils.CheckPasswordHash("supersecret", user.Password))

	s.Equal("Alice Co", company.Name)
	s.Equal("alice@x.com", company.Email)
	s.Require().NotNil(company.UserID)
	s.Equal(user.ID, *company.UserID)

	linked, err := s.svc.CompanyForUser(user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(linked)
	s.Equal(company.ID, linked.ID)
}

func (s *AccountServiceTestSuite) TestSignupSellerValidation() {
	_, _, err := s.svc.SignupSeller(SignupInput{
		Username:        "",
		Email:           "nope",
		Password:        "short",
		PasswordConfirm: "different",
		CompanyName:     "",
	})
	s.Require().Error(err)

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))

	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	s.True(fields["username"])
	s.True(fields["email"])
	s.True(fields["password"])
	s.True(fields["password_confirm"])
	s.True(fields["company_name"])

	var users int64
	s.db.Model(&models.User{}).Count(&users)
	s.Zero(users, "no partial writes on validation failure")
}

func (s *AccountServiceTestSuite) TestSignupSellerAtomic() {
	_, _, err := s.svc.SignupSeller(validSignup())
	s.Require().NoError(err)

	// Same company email, different username: company insert fails on the
	// unique constraint and the new user must be rolled back with it.
	dup := validSignup()
	dup.Username = "alice2"
	_, _, err = s.svc.SignupSeller(dup)
	s.Require().Error(err)

	var users int64
	s.db.Model(&models.User{}).Where("username = ?", "alice2").Count(&users)
	s.Zero(users, "failed company creation must not leave an orphaned user")
}

func (s *AccountServiceTestSuite) TestCompanyForUserWithoutCompany() {
	user := models.User{Username: "bob", Email: "bob@example.com", Password: "x", Role: models.RoleUser}
	s.Require().NoError(s.db.Create(&user).Error)

	company, err := s.svc.CompanyForUser(user.ID)
	s.Require().NoError(err)
	s.Nil(company, "absence of a linked company is not an error")
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
