package pricefmt

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestFormatBRL() {
	ts.Equal("R$ 0,00", FormatBRL(0))
	ts.Equal("R$ 59.000,00", FormatBRL(59000))
	ts.Equal("R$ 1.234.567,50", FormatBRL(1234567.5))
	ts.Equal("-R$ 1.800,00", FormatBRL(-1800))
	ts.Equal("R$ 0,10", FormatBRL(0.1))
	ts.Equal("R$ 100,13", FormatBRL(100.125))
}
