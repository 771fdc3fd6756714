package rule

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RuleTestSuite struct {
	suite.Suite
}

func TestRuleSuite(t *testing.T) {
	suite.Run(t, new(RuleTestSuite))
}

func (suite *RuleTestSuite) TestNeverAndAlways() {
	suite.False(Never().IsSatisfied(0))
	suite.False(Never().IsSatisfied(100))
	suite.True(Always().IsSatisfied(0))
}

func (suite *RuleTestSuite) TestFuncAdapter() {
	even := Func(func(index int) bool { return index%2 == 0 })
	suite.True(even.IsSatisfied(2))
	suite.False(even.IsSatisfied(3))
}

func (suite *RuleTestSuite) TestAnd() {
	suite.True(And(Always(), Always()).IsSatisfied(0))
	suite.False(And(Always(), Never()).IsSatisfied(0))
	suite.False(And(Never(), Never()).IsSatisfied(0))
	// Vacuous truth with no operands.
	suite.True(And().IsSatisfied(0))
}

func (suite *RuleTestSuite) TestOr() {
	suite.True(Or(Always(), Never()).IsSatisfied(0))
	suite.True(Or(Never(), Always()).IsSatisfied(0))
	suite.False(Or(Never(), Never()).IsSatisfied(0))
	suite.False(Or().IsSatisfied(0))
}

func (suite *RuleTestSuite) TestNot() {
	suite.False(Not(Always()).IsSatisfied(0))
	suite.True(Not(Never()).IsSatisfied(0))
}

func (suite *RuleTestSuite) TestComposition() {
	// (always AND (NOT never)) OR never
	rule := Or(And(Always(), Not(Never())), Never())
	suite.True(rule.IsSatisfied(0))
}
