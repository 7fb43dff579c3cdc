package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "save slot 2 is empty",
			expected: "NOT_FOUND: save slot 2 is empty",
		},
		{
			name:     "unimplemented error",
			code:     errors.CodeUnimplemented,
			message:  "cannot use ARMOR item directly",
			expected: "UNIMPLEMENTED: cannot use ARMOR item directly",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to save game")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save game", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("INTERNAL: failed to save game: disk full", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("slot empty").WithMeta("slot", 3)
	wrapped := errors.Wrap(baseErr, "failed to load game")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal(3, wrapped.Meta["slot"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("record").WithMeta("slot", 1)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeDataLoss, "corrupted save")

	s.Equal(errors.CodeDataLoss, wrapped.Code)
	s.Equal(1, wrapped.Meta["slot"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	sentinel := errors.Unimplemented("unsupported item type")
	err := errors.Unimplementedf("cannot use %s item directly", "GOLD")

	s.True(errors.Is(err, sentinel))
	s.False(errors.Is(errors.NotFound("x"), sentinel))
	s.True(errors.Is(errors.Wrap(err, "use failed"), sentinel))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.DataLossf("slot %d corrupted", 2).WithMeta("slot", 2)
	stdErr := fmt.Errorf("standard error")

	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
	s.Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal(2, errors.GetMeta(err)["slot"])
	s.Nil(errors.GetMeta(stdErr))

	s.Equal("slot 2 corrupted", errors.GetMessage(err))
	s.Equal("standard error", errors.GetMessage(stdErr))
	s.Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestRetryable() {
	s.True(errors.CodeInvalidArgument.Retryable())
	s.True(errors.CodeUnavailable.Retryable())
	s.False(errors.CodeDataLoss.Retryable())
	s.False(errors.CodeInternal.Retryable())
}
