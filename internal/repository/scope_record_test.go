package repository

import (
	"encoding/json"
	"testing"
	"time"

	"teamflow-backend/internal/snapshot"
	"teamflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScopeRecordRepositoryTestSuite tests the ScopeRecordRepository
type ScopeRecordRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScopeRecordRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ScopeRecordRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewScopeRecordRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScopeRecordRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScopeRecordRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScopeRecordRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertCreates tests inserting a fresh scope record
func (suite *ScopeRecordRepositoryTestSuite) TestUpsertCreates() {
	record := suite.factories.ScopeRecord.Create()

	err := suite.repo.Upsert(record)
	suite.NoError(err)

	found, err := suite.repo.GetByKey(record.Key)
	suite.NoError(err)
	suite.Equal(record.Key, found.Key)
	suite.Equal(record.LastUpdated, found.LastUpdated)
	suite.NotZero(found.CreatedAt)
}

// TestUpsertOverwrites tests that a second upsert replaces the payload
func (suite *ScopeRecordRepositoryTestSuite) TestUpsertOverwrites() {
	record := suite.factories.ScopeRecord.Create()
	err := suite.repo.Upsert(record)
	suite.NoError(err)

	// Overwrite with a newer snapshot under the same key
	snap := snapshot.Seed(time.Now())
	snap.AddPerson(snapshot.Person{ID: snapshot.NewID(), Name: "Late Joiner"})
	snap.Touch(time.Now().Add(time.Minute))
	updated := suite.factories.ScopeRecord.WithSnapshot(snap)
	updated.Key = record.Key
	updated.Name = record.Name

	err = suite.repo.Upsert(updated)
	suite.NoError(err)

	found, err := suite.repo.GetByKey(record.Key)
	suite.NoError(err)
	suite.Equal(snap.LastUpdated, found.LastUpdated)

	var stored snapshot.Snapshot
	suite.NoError(json.Unmarshal(found.Data, &stored))
	suite.Len(stored.Persons, 6)
}

// TestGetByKeyNotFound tests looking up a key that was never written
func (suite *ScopeRecordRepositoryTestSuite) TestGetByKeyNotFound() {
	found, err := suite.repo.GetByKey("TF-MISSNG-KEY9")
	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestDelete tests deleting a scope record
func (suite *ScopeRecordRepositoryTestSuite) TestDelete() {
	record := suite.factories.ScopeRecord.Create()
	err := suite.repo.Upsert(record)
	suite.NoError(err)

	err = suite.repo.Delete(record.Key)
	suite.NoError(err)

	_, err = suite.repo.GetByKey(record.Key)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestExists tests the existence check
func (suite *ScopeRecordRepositoryTestSuite) TestExists() {
	record := suite.factories.ScopeRecord.Create()
	err := suite.repo.Upsert(record)
	suite.NoError(err)

	exists, err := suite.repo.Exists(record.Key)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists("TF-ABSENT-XX22")
	suite.NoError(err)
	suite.False(exists)
}

// TestListKeys tests pagination ordered by freshness
func (suite *ScopeRecordRepositoryTestSuite) TestListKeys() {
	older := suite.factories.ScopeRecord.WithLastUpdated(1000)
	newer := suite.factories.ScopeRecord.WithLastUpdated(2000)
	suite.NoError(suite.repo.Upsert(older))
	suite.NoError(suite.repo.Upsert(newer))

	keys, total, err := suite.repo.ListKeys(10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal([]string{newer.Key, older.Key}, keys)

	keys, total, err = suite.repo.ListKeys(1, 1)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal([]string{older.Key}, keys)
}

// TestScopeRecordRepositoryTestSuite runs the test suite
func TestScopeRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScopeRecordRepositoryTestSuite))
}
