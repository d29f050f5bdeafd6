package errors_test

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
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
			message:  "save file not found",
			expected: "NOT_FOUND: save file not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "no save file loaded",
			expected: "FAILED_PRECONDITION: no save file loaded",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("catalog not found").
		WithMeta("kind", "items").
		WithMeta("path", "items.json")

	s.Assert().Equal("items", err.Meta["kind"])
	s.Assert().Equal("items.json", err.Meta["path"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to write save file")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to write save file", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("file not found").WithMeta("path", "a.json")
	wrapped := errors.Wrapf(baseErr, "failed to open %s", "a.json")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to open a.json", wrapped.Message)
	s.Assert().Equal("a.json", wrapped.Meta["path"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("write failed").WithMeta("path", "a.json")
	wrapped := errors.WrapWithCode(baseErr, errors.CodePermissionDenied, "cannot write save file")

	s.Assert().Equal(errors.CodePermissionDenied, wrapped.Code)
	s.Assert().Equal("a.json", wrapped.Meta["path"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"PermissionDenied", func() *errors.Error { return errors.PermissionDenied("test") }, errors.CodePermissionDenied},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"OutOfRange", func() *errors.Error { return errors.OutOfRange("test") }, errors.CodeOutOfRange},
		{"DataLoss", func() *errors.Error { return errors.DataLoss("test") }, errors.CodeDataLoss},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsInvalidArgument(notFoundErr))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPreconditionf("no %s", "file")))
	s.Assert().True(errors.IsOutOfRange(errors.OutOfRangef("index %d", 9)))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestUserMessage() {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "coded without cause",
			err:      errors.FailedPrecondition("Load a file first!"),
			expected: "Not ready: Load a file first!",
		},
		{
			name:     "wrapped plain cause",
			err:      errors.Wrap(fmt.Errorf("disk full"), "Could not save"),
			expected: "Error: Could not save:\ndisk full",
		},
		{
			name:     "wrapped coded cause",
			err:      errors.Wrap(errors.NotFound("no such file"), "Could not load JSON"),
			expected: "Not found: Could not load JSON:\nno such file",
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("boom"),
			expected: "Error: boom",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, errors.UserMessage(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestFromFS() {
	testCases := []struct {
		name     string
		err      error
		wantCode errors.Code
		wantMsg  string
	}{
		{
			name:     "missing file",
			err:      fmt.Errorf("open: %w", fs.ErrNotExist),
			wantCode: errors.CodeNotFound,
			wantMsg:  "failed to read save file: a.json not found",
		},
		{
			name:     "permission",
			err:      fmt.Errorf("open: %w", fs.ErrPermission),
			wantCode: errors.CodePermissionDenied,
			wantMsg:  "failed to read save file: a.json",
		},
		{
			name:     "anything else",
			err:      fmt.Errorf("disk full"),
			wantCode: errors.CodeInternal,
			wantMsg:  "failed to read save file: a.json",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.FromFS(tc.err, "a.json", "failed to read save file")
			s.Require().NotNil(err)
			s.Assert().Equal(tc.wantCode, err.Code)
			s.Assert().Equal(tc.wantMsg, err.Message)
			s.Assert().Equal("a.json", err.Meta["path"])
			s.Assert().ErrorIs(err, tc.err)
		})
	}

	s.Assert().Nil(errors.FromFS(nil, "a.json", "unused"))
}

func (s *ErrorsTestSuite) TestLogValue() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := errors.Wrap(fmt.Errorf("disk full"), "Could not save").WithMeta("path", "a.json")
	logger.Error("save failed", "error", err)

	out := buf.String()
	s.Assert().Contains(out, "error.code=INTERNAL")
	s.Assert().Contains(out, `error.message="Could not save"`)
	s.Assert().Contains(out, `error.cause="disk full"`)
	s.Assert().Contains(out, "error.path=a.json")
}
