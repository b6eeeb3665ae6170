package repository

import (
	"testing"

	"teamflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AccountRepositoryTestSuite tests the AccountRepository
type AccountRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AccountRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AccountRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAccountRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AccountRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AccountRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AccountRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new account
func (suite *AccountRepositoryTestSuite) TestCreate() {
	account := suite.factories.Account.Create()

	err := suite.repo.Create(account)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, account.ID)
	suite.NotZero(account.CreatedAt)
	suite.NotZero(account.UpdatedAt)
}

// TestCreateDuplicateEmail tests the unique constraint on email
func (suite *AccountRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.Account.WithEmail("dup@test.com")
	err := suite.repo.Create(first)
	suite.NoError(err)

	second := suite.factories.Account.WithEmail("dup@test.com")
	err = suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmail tests retrieving an account by email
func (suite *AccountRepositoryTestSuite) TestGetByEmail() {
	account := suite.factories.Account.WithEmail("lookup@test.com")
	err := suite.repo.Create(account)
	suite.NoError(err)

	found, err := suite.repo.GetByEmail("lookup@test.com")
	suite.NoError(err)
	suite.Equal(account.ID, found.ID)
	suite.Equal(account.ScopeKey, found.ScopeKey)
}

// TestGetByEmailNotFound tests looking up an unknown email
func (suite *AccountRepositoryTestSuite) TestGetByEmailNotFound() {
	found, err := suite.repo.GetByEmail("nobody@test.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestUpdateScopeKey tests switching an account to a shared scope
func (suite *AccountRepositoryTestSuite) TestUpdateScopeKey() {
	account := suite.factories.Account.Create()
	err := suite.repo.Create(account)
	suite.NoError(err)

	err = suite.repo.UpdateScopeKey(account.ID, "TF-ABC234-WXYZ")
	suite.NoError(err)

	found, err := suite.repo.GetByID(account.ID)
	suite.NoError(err)
	suite.Equal("TF-ABC234-WXYZ", found.ScopeKey)
}

// TestCheckEmailExists tests the email existence check
func (suite *AccountRepositoryTestSuite) TestCheckEmailExists() {
	account := suite.factories.Account.WithEmail("present@test.com")
	err := suite.repo.Create(account)
	suite.NoError(err)

	exists, err := suite.repo.CheckEmailExists("present@test.com")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.CheckEmailExists("absent@test.com")
	suite.NoError(err)
	suite.False(exists)
}

// TestAccountRepositoryTestSuite runs the test suite
func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}
